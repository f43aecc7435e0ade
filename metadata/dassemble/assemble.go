// Package dassemble re-emits a metadata file around a reconstructed header.
package dassemble

import (
	"fmt"

	"github.com/pkg/errors"
	"unshuffle-metadata/metadata/dheader"
	"unshuffle-metadata/metadata/lbytes"
)

type ErrBodyOutOfRange struct {
	HeaderSize uint32
	FileSize   int
}

func (r ErrBodyOutOfRange) Error() string {
	return fmt.Sprintf("header size %d is past the end of a %d byte file", r.HeaderSize, r.FileSize)
}

// Assemble returns the canonical header, its length as a signed word, then
// the original file from headerSize onwards.
func Assemble(header dheader.Header, file []byte, headerSize uint32, format dheader.Format) ([]byte, error) {
	if int64(headerSize) > int64(len(file)) {
		err := &ErrBodyOutOfRange{HeaderSize: headerSize, FileSize: len(file)}
		return nil, errors.Wrap(err, "dassemble.Assemble error")
	}

	headerBytes := dheader.Encode(header, format)
	body := file[headerSize:]

	bs := make([]byte, 0, CalculateSize(len(header.Pairs), len(file), headerSize))
	bs = append(bs, headerBytes...)
	bs = append(bs, lbytes.EncodeValueUIntWithOrder(uint32(int32(len(headerBytes))), format.Order)...)
	bs = append(bs, body...)
	return bs, nil
}

// CalculateSize is the output length for numPairs pairs.
func CalculateSize(numPairs int, fileSize int, headerSize uint32) int {
	return 8 + 8*numPairs + lbytes.WordSize + fileSize - int(headerSize)
}
