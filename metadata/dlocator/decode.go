package dlocator

import (
	"github.com/pkg/errors"
	"unshuffle-metadata/metadata/lbytes"
)

const (
	fieldRandomString = "random_string"
	fieldHeaderOffset = "header_offset"
	fieldHeaderSize   = "header_size"
	fieldCiphertext   = "ciphertext"
)

// Decode reads the framing fields from the current position of reader.
func Decode(reader *lbytes.Reader) (*Location, error) {
	size := int(reader.Size())
	// each read function reports which field ran out of bytes, since
	// ExecuteInstructions only sees the generic io error
	guard := func(field string, want int64, read lbytes.ReadFunction) lbytes.ReadFunction {
		return func() (any, error) {
			value, err := read()
			if err != nil {
				end := want
				if end < 0 {
					end = reader.Offset() + 1
				}
				return nil, &ErrTruncatedFile{Field: field, Want: end, Size: size}
			}
			return value, nil
		}
	}

	readString := guard(fieldRandomString, -1, lbytes.CreateStringCReadFunction(reader))
	location, err := lbytes.ExecuteInstructions[Location](
		[]lbytes.Instruction{
			{Key: fieldRandomString, ReadFunction: readString},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "dlocator.Decode error")
	}

	offset := reader.Offset()
	instructions := []lbytes.Instruction{
		{Key: fieldHeaderOffset, ReadFunction: guard(fieldHeaderOffset, offset+lbytes.WordSize, lbytes.CreateIntReadFunction(reader))},
		{Key: fieldHeaderSize, ReadFunction: guard(fieldHeaderSize, offset+2*lbytes.WordSize, lbytes.CreateUIntReadFunction(reader))},
	}
	header, err := lbytes.ExecuteInstructions[Location](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "dlocator.Decode error")
	}
	header.RandomString = location.RandomString

	return header, nil
}

// Locate decodes the framing at the start of bs and slices out the
// encrypted header. The returned ciphertext aliases bs.
func Locate(bs []byte) (*Location, []byte, error) {
	location, err := Decode(lbytes.NewBytesReader(bs))
	if err != nil {
		return nil, nil, errors.Wrap(err, "dlocator.Locate error")
	}

	start := int64(location.HeaderOffset)
	end := location.End()
	if start < 0 || end > int64(len(bs)) {
		err := &ErrTruncatedFile{Field: fieldCiphertext, Want: end, Size: len(bs)}
		return nil, nil, errors.Wrap(err, "dlocator.Locate error")
	}

	return location, bs[start:end], nil
}
