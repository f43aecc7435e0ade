package dheader

import (
	"unshuffle-metadata/metadata/lbytes"
)

// Encode lays out the canonical header: sanity, version, then every pair
// as an unsigned offset followed by a signed size.
func Encode(header Header, format Format) []byte {
	bs := make([]byte, 0, header.Size())
	bs = append(bs, format.Sanity...)
	bs = append(bs, format.VersionBytes()...)
	for _, pair := range header.Pairs {
		bs = append(bs, lbytes.EncodeValueUIntWithOrder(pair.Offset, format.Order)...)
		bs = append(bs, lbytes.EncodeValueUIntWithOrder(uint32(pair.Size), format.Order)...)
	}
	return bs
}
