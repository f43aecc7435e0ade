// Package logging holds the structured-field vocabulary shared by every
// stage of the pipeline.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	FieldStage       = "stage"
	FieldPath        = "path"
	FieldOffset      = "offset"
	FieldSize        = "size"
	FieldNextOffset  = "next_offset"
	FieldRemaining   = "remaining"
	FieldPairs       = "pairs"
	FieldBytes       = "bytes"
	FieldHex         = "hex"
	FieldString      = "random_string"
	FieldHeaderOff   = "header_offset"
	FieldHeaderSize  = "header_size"
	FieldHeaderBytes = "header_length"

	StageLocate      = "locate"
	StageDecrypt     = "decrypt"
	StageReconstruct = "reconstruct"
	StageAssemble    = "assemble"
	StageWrite       = "write"
)

// New builds the logger used by the command line. verbose enables the
// per-pair narration at debug level.
func New(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything, for library callers that
// do not care about progress.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
