package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return NewBytesReaderWithOrder(bs, binary.LittleEndian)
}

func NewBytesReaderWithOrder(bs []byte, order binary.ByteOrder) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
		Order:  order,
	}
}

// Offset returns the position of the next byte to be read.
func (b *Reader) Offset() int64 {
	return b.Size() - int64(b.Len())
}

func (b *Reader) ReadInt() (int32, error) {
	result, err := b.ReadUInt()
	if err != nil {
		return 0, err
	}
	return int32(result), nil
}

func (b *Reader) ReadUInt() (uint32, error) {
	bs, err := b.ReadBytes(WordSize)
	if err != nil {
		return 0, err
	}
	return b.Order.Uint32(bs), nil
}

// ReadBytes reads exactly n bytes. A short read is reported as
// io.ErrUnexpectedEOF rather than returning the partial slice.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return bs, nil
}

// ReadStringC reads a NUL-terminated string and consumes the terminator.
func (b *Reader) ReadStringC() (string, error) {
	bs := make([]byte, 0, 32)
	for {
		c, err := b.ReadByte()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		if c == 0 {
			return string(bs), nil
		}
		bs = append(bs, c)
	}
}

// ReadInts reads words until the reader is drained. The remaining length
// must be a multiple of WordSize.
func (b *Reader) ReadInts() ([]int32, error) {
	if b.Len()%WordSize != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	ints := make([]int32, 0, b.Len()/WordSize)
	for b.Len() > 0 {
		i, err := b.ReadInt()
		if err != nil {
			return nil, err
		}
		ints = append(ints, i)
	}
	return ints, nil
}
