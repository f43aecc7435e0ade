package metadata

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/logging"
	"unshuffle-metadata/metadata/dassemble"
)

// RestoreFile reads config.Input and writes the fixed file to
// config.Output. An existing output is refused before any work is done.
func RestoreFile(config Config) error {
	logger := config.Logger.WithField(logging.FieldPath, config.Output)

	existed, err := dassemble.CheckExistence(config.Output)
	if err != nil {
		return errors.Wrap(err, "metadata.RestoreFile error")
	}
	if existed {
		err := &dassemble.ErrOutputAlreadyExists{Path: config.Output}
		return errors.Wrap(err, "metadata.RestoreFile error")
	}

	file, err := os.ReadFile(config.Input)
	if err != nil {
		return errors.Wrapf(err, `metadata.RestoreFile error reading "%s"`, config.Input)
	}

	bs, err := Restore(file, config)
	if err != nil {
		return errors.Wrapf(err, `metadata.RestoreFile error restoring "%s"`, config.Input)
	}

	if err := dassemble.WriteFile(config.Output, bs); err != nil {
		return errors.Wrap(err, "metadata.RestoreFile error")
	}
	logger.WithFields(
		logrus.Fields{
			logging.FieldStage: logging.StageWrite,
			logging.FieldBytes: len(bs),
		},
	).Info("wrote restored metadata")

	return nil
}
