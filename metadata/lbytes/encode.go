package lbytes

import (
	"encoding/binary"
)

func EncodeValueInt(value int32) []byte {
	return EncodeValueUInt(uint32(value))
}

func EncodeValueUInt(value uint32) []byte {
	return EncodeValueUIntWithOrder(value, binary.LittleEndian)
}

func EncodeValueUIntWithOrder(value uint32, order binary.ByteOrder) []byte {
	bs := make([]byte, WordSize)
	order.PutUint32(bs, value)
	return bs
}

// EncodeStringC appends the NUL terminator that ReadStringC consumes.
func EncodeStringC(s string) []byte {
	bs := make([]byte, 0, len(s)+1)
	bs = append(bs, s...)
	return append(bs, '\u0000')
}
