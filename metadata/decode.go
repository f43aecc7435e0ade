package metadata

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/logging"
	"unshuffle-metadata/metadata/dassemble"
	"unshuffle-metadata/metadata/dcipher"
	"unshuffle-metadata/metadata/dheader"
	"unshuffle-metadata/metadata/dlocator"
)

func Locate(file []byte, logger logrus.FieldLogger) (*Located, error) {
	location, ciphertext, err := dlocator.Locate(file)
	if err != nil {
		return nil, errors.Wrap(err, "metadata.Locate error")
	}
	logger.WithFields(
		logrus.Fields{
			logging.FieldStage:      logging.StageLocate,
			logging.FieldString:     location.RandomString,
			logging.FieldHeaderOff:  location.HeaderOffset,
			logging.FieldHeaderSize: location.HeaderSize,
		},
	).Debug("located encrypted header")

	return &Located{
		Location:   *location,
		File:       file,
		Ciphertext: ciphertext,
	}, nil
}

func (r Located) Decrypt(key []byte, logger logrus.FieldLogger) (*Decrypted, error) {
	plaintext, err := dcipher.Decrypt(r.Ciphertext, key)
	if err != nil {
		return nil, errors.Wrap(err, "metadata.Decrypt error")
	}
	logger.WithFields(
		logrus.Fields{
			logging.FieldStage: logging.StageDecrypt,
			logging.FieldBytes: len(plaintext),
			logging.FieldHex:   hex.EncodeToString(plaintext),
		},
	).Debug("decrypted header")

	return &Decrypted{
		Location:  r.Location,
		File:      r.File,
		Plaintext: plaintext,
	}, nil
}

func (r Decrypted) Reconstruct(format dheader.Format, seed int64, logger logrus.FieldLogger) (*Reconstructed, error) {
	header, err := dheader.Reconstruct(r.Plaintext, format, seed, logger)
	if err != nil {
		return nil, errors.Wrap(err, "metadata.Reconstruct error")
	}

	return &Reconstructed{
		Location: r.Location,
		File:     r.File,
		Header:   *header,
	}, nil
}

func (r Reconstructed) Assemble(format dheader.Format) ([]byte, error) {
	bs, err := dassemble.Assemble(r.Header, r.File, r.Location.HeaderSize, format)
	if err != nil {
		return nil, errors.Wrap(err, "metadata.Assemble error")
	}
	return bs, nil
}

func reconstruct(file []byte, config Config) (*Decrypted, *Reconstructed, error) {
	located, err := Locate(file, config.Logger)
	if err != nil {
		return nil, nil, err
	}
	decrypted, err := located.Decrypt(config.Key, config.Logger)
	if err != nil {
		return nil, nil, err
	}
	reconstructed, err := decrypted.Reconstruct(config.Format, config.Seed, config.Logger)
	if err != nil {
		return nil, nil, err
	}
	return decrypted, reconstructed, nil
}

// Restore runs the whole pipeline in memory and returns the fixed file.
func Restore(file []byte, config Config) ([]byte, error) {
	_, reconstructed, err := reconstruct(file, config)
	if err != nil {
		return nil, err
	}
	return reconstructed.Assemble(config.Format)
}

// Inspect runs the pipeline up to the reconstructed header without
// producing output bytes.
func Inspect(file []byte, config Config) (*Report, error) {
	decrypted, reconstructed, err := reconstruct(file, config)
	if err != nil {
		return nil, err
	}
	return &Report{
		Location:   reconstructed.Location,
		Decrypted:  hex.EncodeToString(decrypted.Plaintext),
		Header:     reconstructed.Header,
		OutputSize: dassemble.CalculateSize(len(reconstructed.Header.Pairs), len(file), reconstructed.Location.HeaderSize),
	}, nil
}
