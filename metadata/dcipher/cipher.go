// Package dcipher wraps the XXTEA block cipher that protects the header.
//
// The header was encrypted with the length-prefixed XXTEA variant: the
// plaintext length is appended as one extra word before encryption, and no
// padding is added. Decrypt drops that word again.
package dcipher

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xxtea/xxtea-go/xxtea"
	"unshuffle-metadata/metadata/dkey"
	"unshuffle-metadata/metadata/lbytes"
)

const (
	// MinBlockSize is two words, the smallest input XXTEA mixes.
	MinBlockSize = 2 * lbytes.WordSize
)

type (
	ErrInvalidCiphertextLength struct {
		Length int
	}
	ErrInvalidKeyLength struct {
		Length int
	}
)

// ErrCorruptedBlock means the trailing length word did not match the
// block, which happens with a wrong key or a damaged header.
var ErrCorruptedBlock = errors.New("decrypted length word does not match the block size")

func (r ErrInvalidCiphertextLength) Error() string {
	return fmt.Sprintf(
		"invalid ciphertext length %d: must be a multiple of %d and at least %d",
		r.Length, lbytes.WordSize, MinBlockSize,
	)
}

func (r ErrInvalidKeyLength) Error() string {
	return fmt.Sprintf("invalid key length %d: expected %d", r.Length, dkey.KeySize)
}

func checkKey(key []byte) error {
	if len(key) != dkey.KeySize {
		return &ErrInvalidKeyLength{Length: len(key)}
	}
	return nil
}

// Decrypt returns the plaintext header with the appended length word
// removed. The result is always len(ciphertext)-4 bytes long.
func Decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, errors.Wrap(err, "dcipher.Decrypt error")
	}
	if len(ciphertext) < MinBlockSize || len(ciphertext)%lbytes.WordSize != 0 {
		err := &ErrInvalidCiphertextLength{Length: len(ciphertext)}
		return nil, errors.Wrap(err, "dcipher.Decrypt error")
	}

	plaintext := xxtea.Decrypt(ciphertext, key)
	if plaintext == nil || len(plaintext) != len(ciphertext)-lbytes.WordSize {
		return nil, errors.Wrapf(ErrCorruptedBlock, "dcipher.Decrypt error with %d bytes", len(ciphertext))
	}

	return plaintext, nil
}

// Encrypt is the inverse of Decrypt. plaintext must be whole words so that
// no padding is introduced.
func Encrypt(plaintext []byte, key []byte) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, errors.Wrap(err, "dcipher.Encrypt error")
	}
	if len(plaintext) < lbytes.WordSize || len(plaintext)%lbytes.WordSize != 0 {
		err := &ErrInvalidCiphertextLength{Length: len(plaintext) + lbytes.WordSize}
		return nil, errors.Wrap(err, "dcipher.Encrypt error")
	}

	return xxtea.Encrypt(plaintext, key), nil
}
