package lbytes

import (
	"bytes"
	"encoding/binary"
)

type (
	Reader struct {
		bytes.Reader
		Order binary.ByteOrder
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	// WordSize is the width of every integer field in a metadata header.
	WordSize = 4
)
