package dlocator

import (
	"unshuffle-metadata/metadata/lbytes"
)

// Encode writes the framing fields in the order Decode reads them.
func Encode(location Location) []byte {
	bs := lbytes.EncodeStringC(location.RandomString)
	bs = append(bs, lbytes.EncodeValueInt(location.HeaderOffset)...)
	bs = append(bs, lbytes.EncodeValueUInt(location.HeaderSize)...)
	return bs
}

// FramingSize is the number of bytes Encode produces for location.
func FramingSize(location Location) int {
	return len(location.RandomString) + 1 + 2*lbytes.WordSize
}
