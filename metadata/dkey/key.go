// Package dkey recovers the XXTEA key that protects the metadata header.
package dkey

import (
	"github.com/samber/lo"
)

const (
	KeySize = 16
	XORMask = byte(0x41)
)

// obfuscatedKey is stored masked with XORMask; only the first KeySize bytes
// of the unmasked value are used as the key.
var obfuscatedKey = []byte("##%$vsw'lytyqlusxul##p\"lvxrsv\"y\"y'xu%tv\"qsy\"l%%#qlux'ul# wylys\"t 'v$us''A")

func xor(bs []byte, mask byte) []byte {
	return lo.Map(
		bs,
		func(b byte, _ int) byte {
			return b ^ mask
		},
	)
}

// DeriveKey returns a fresh copy of the 16-byte header key.
func DeriveKey() []byte {
	return xor(obfuscatedKey, XORMask)[:KeySize]
}

// Deobfuscate applies a single-byte XOR mask. It is its own inverse.
func Deobfuscate(bs []byte, mask byte) []byte {
	return xor(bs, mask)
}
