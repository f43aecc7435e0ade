package dheader

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/logging"
	"unshuffle-metadata/metadata/lbytes"
)

// StripConstants checks that both format constants are present and returns
// a copy of bs with every occurrence of them removed.
func StripConstants(bs []byte, format Format) ([]byte, error) {
	if !bytes.Contains(bs, format.Sanity) {
		return nil, &ErrSanityCheckFailed{Expected: format.Sanity}
	}
	versionBytes := format.VersionBytes()
	if !bytes.Contains(bs, versionBytes) {
		return nil, &ErrUnsupportedVersion{Expected: versionBytes}
	}

	stripped := bytes.ReplaceAll(bs, format.Sanity, nil)
	stripped = bytes.ReplaceAll(stripped, versionBytes, nil)
	return stripped, nil
}

// DecodePool reads the stripped header as a flat run of signed words. There
// must be a whole number of offset/size pairs.
func DecodePool(bs []byte, format Format) ([]int32, error) {
	if len(bs)%lbytes.WordSize != 0 {
		return nil, &ErrMalformedPool{Length: len(bs), Reason: "not a whole number of words"}
	}
	if len(bs)%(2*lbytes.WordSize) != 0 {
		return nil, &ErrMalformedPool{Length: len(bs), Reason: "odd number of words"}
	}

	pool, err := lbytes.NewBytesReaderWithOrder(bs, format.Order).ReadInts()
	if err != nil {
		return nil, errors.Wrap(err, "dheader.DecodePool error")
	}
	return pool, nil
}

// Reconstruct turns a decrypted header into its canonical pair order. seed
// is the first segment's offset, or AutoSeed.
func Reconstruct(decrypted []byte, format Format, seed int64, logger logrus.FieldLogger) (*Header, error) {
	logger = logger.WithField(logging.FieldStage, logging.StageReconstruct)

	stripped, err := StripConstants(decrypted, format)
	if err != nil {
		return nil, errors.Wrap(err, "dheader.Reconstruct error")
	}
	logger.WithFields(
		logrus.Fields{
			"sanity":  format.Sanity,
			"version": format.Version,
		},
	).Debug("found sanity and version bytes")

	pool, err := DecodePool(stripped, format)
	if err != nil {
		return nil, errors.Wrap(err, "dheader.Reconstruct error")
	}

	pairs, err := UnshuffleFrom(pool, seed, format, logger)
	if err != nil {
		return nil, errors.Wrap(err, "dheader.Reconstruct error")
	}
	logger.WithField(logging.FieldPairs, len(pairs)).Info("unshuffled header")

	return &Header{Pairs: pairs}, nil
}
