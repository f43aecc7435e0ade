// Package metadata restores a scrambled IL2CPP global-metadata file: it
// finds and decrypts the header block, recovers its field order and
// re-emits the file.
package metadata

import (
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/logging"
	"unshuffle-metadata/metadata/dheader"
	"unshuffle-metadata/metadata/dkey"
	"unshuffle-metadata/metadata/dlocator"
)

const (
	DefaultInput  = "global-metadata.dat"
	DefaultOutput = "global-metadata-fixed.dat"
)

type (
	Config struct {
		Input  string
		Output string
		Format dheader.Format
		Key    []byte
		// Seed is the offset of the first segment, or dheader.AutoSeed.
		Seed   int64
		Logger logrus.FieldLogger
	}

	// Each stage only exposes the step that follows it, so the pipeline
	// cannot run out of order.
	Located struct {
		Location   dlocator.Location
		File       []byte
		Ciphertext []byte
	}
	Decrypted struct {
		Location  dlocator.Location
		File      []byte
		Plaintext []byte
	}
	Reconstructed struct {
		Location dlocator.Location
		File     []byte
		Header   dheader.Header
	}

	Report struct {
		Location   dlocator.Location `json:"location"`
		Decrypted  string            `json:"decrypted_header"`
		Header     dheader.Header    `json:"header"`
		OutputSize int               `json:"output_size"`
	}
)

func DefaultConfig() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Format: dheader.DefaultFormat(),
		Key:    dkey.DeriveKey(),
		Seed:   dheader.AutoSeed,
		Logger: logging.Discard(),
	}
}
