// Package dlocator reads the leading framing of a scrambled metadata file
// to find the encrypted header block.
package dlocator

import (
	"fmt"
)

type (
	Location struct {
		RandomString string `json:"random_string"`
		HeaderOffset int32  `json:"header_offset"`
		HeaderSize   uint32 `json:"header_size"`
	}

	// ErrTruncatedFile is returned when the file ends before Field is
	// complete. Want is the end offset that was needed.
	ErrTruncatedFile struct {
		Field string
		Want  int64
		Size  int
	}
)

func (r ErrTruncatedFile) Error() string {
	return fmt.Sprintf(
		`truncated file: field "%s" needs %d bytes, file has %d`,
		r.Field, r.Want, r.Size,
	)
}

// End is the offset of the first byte after the encrypted header.
func (r Location) End() int64 {
	return int64(r.HeaderOffset) + int64(r.HeaderSize)
}
