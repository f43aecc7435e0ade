package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	type pair struct {
		Offset uint32 `json:"offset"`
		Size   int32  `json:"size"`
	}
	assert.Equal(t, `{"offset":256,"size":-1}`, DumpJSON(pair{Offset: 256, Size: -1}))
	assert.Contains(t, DumpJSON(make(chan int)), "DumpJSON error")
}

func TestErrUnreachableCode(t *testing.T) {
	assert.EqualError(t, ErrUnreachableCode{Caller: "ui.Start"}, "ui.Start: unreachable code")
}
