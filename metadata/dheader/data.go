// Package dheader recovers the canonical field order of a decrypted,
// shuffled metadata header.
package dheader

import (
	"encoding/binary"
	"fmt"
)

type (
	Pair struct {
		Offset uint32 `json:"offset"`
		Size   int32  `json:"size"`
	}
	Header struct {
		Pairs []Pair `json:"pairs"`
	}

	// Format describes the constants of one metadata layout. It is passed
	// explicitly to every stage instead of living in package globals.
	Format struct {
		Sanity  []byte
		Version uint32
		// Gap is the slack allowed between one segment's end and the next
		// segment's start, for the single reserved field some layouts keep.
		Gap   int32
		Order binary.ByteOrder
	}
)

const (
	DefaultVersion = 29
	DefaultGap     = 4
	// AutoSeed starts the walk at the smallest non-zero pool value. Zero is
	// never a usable first offset, so it doubles as "not set".
	AutoSeed = 0
)

var DefaultSanityBytes = []byte{0xAF, 0x1B, 0xB1, 0xFA}

func DefaultFormat() Format {
	return Format{
		Sanity:  DefaultSanityBytes,
		Version: DefaultVersion,
		Gap:     DefaultGap,
		Order:   binary.LittleEndian,
	}
}

func (r Format) VersionBytes() []byte {
	bs := make([]byte, 4)
	r.Order.PutUint32(bs, r.Version)
	return bs
}

// Size is the encoded length of the header: both constants plus two words
// per pair.
func (r Header) Size() int {
	return 8 + 8*len(r.Pairs)
}

type (
	ErrSanityCheckFailed struct {
		Expected []byte
	}
	ErrUnsupportedVersion struct {
		Expected []byte
	}
	ErrMalformedPool struct {
		Length int
		Reason string
	}
	ErrReconstructionFailure struct {
		Offset    int64
		Remaining []int64
		Reason    string
	}
)

func (r ErrSanityCheckFailed) Error() string {
	return fmt.Sprintf("sanity bytes %x not found in decrypted header", r.Expected)
}

func (r ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("version bytes %x not found in decrypted header", r.Expected)
}

func (r ErrMalformedPool) Error() string {
	return fmt.Sprintf("malformed integer pool of %d bytes: %s", r.Length, r.Reason)
}

func (r ErrReconstructionFailure) Error() string {
	return fmt.Sprintf(
		"reconstruction failed at offset %d: %s; remaining pool %v",
		r.Offset, r.Reason, r.Remaining,
	)
}
