package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"unshuffle-metadata/ds"
	"unshuffle-metadata/logging"
	"unshuffle-metadata/metadata"
	"unshuffle-metadata/ui"
)

type (
	Args struct {
		Fix         *FixCmd         `arg:"subcommand:fix" help:"restore the header and write the fixed file (default)"`
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"print the recovered header as JSON"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick the source file from a list"`
		Verbose     bool            `arg:"-v,--verbose,env:UNSHUFFLE_VERBOSE" help:"log every recovered pair"`
	}
	FixCmd struct {
		From string `default:"global-metadata.dat" help:"path to source file" placeholder:"IN"`
		To   string `default:"global-metadata-fixed.dat" help:"path to destination file" placeholder:"OUT"`
		Seed int64  `help:"offset of the first segment; 0 picks the smallest non-zero value" placeholder:"N"`
	}
	InspectCmd struct {
		From string `default:"global-metadata.dat" help:"path to source file" placeholder:"IN"`
		Seed int64  `help:"offset of the first segment; 0 picks the smallest non-zero value" placeholder:"N"`
	}
	InteractiveCmd struct {
		Dir string `default:"." help:"directory to list" placeholder:"DIR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Decrypts the header of a protected IL2CPP global-metadata.dat",
			"and puts its offset/size fields back in order.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// FixedName derives the output name used next to an input file, e.g.
// global-metadata.dat becomes global-metadata-fixed.dat.
func FixedName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-fixed" + ext
}

func createConfig(from string, to string, seed int64, logger logrus.FieldLogger) metadata.Config {
	config := metadata.DefaultConfig()
	config.Input = from
	config.Output = to
	config.Seed = seed
	config.Logger = logger
	return config
}

func StartFixing(cmd FixCmd, logger logrus.FieldLogger) error {
	config := createConfig(cmd.From, cmd.To, cmd.Seed, logger)
	if err := metadata.RestoreFile(config); err != nil {
		return errors.Wrap(err, "StartFixing error")
	}
	return nil
}

func StartInspecting(cmd InspectCmd, out io.Writer, logger logrus.FieldLogger) error {
	config := createConfig(cmd.From, "", cmd.Seed, logger)
	file, err := os.ReadFile(config.Input)
	if err != nil {
		return errors.Wrapf(err, `StartInspecting error reading "%s"`, config.Input)
	}
	report, err := metadata.Inspect(file, config)
	if err != nil {
		return errors.Wrap(err, "StartInspecting error")
	}
	if _, err := fmt.Fprintln(out, ds.DumpJSON(report)); err != nil {
		return errors.Wrap(err, "StartInspecting error")
	}
	return nil
}

func StartInteractive(cmd InteractiveCmd, logger logrus.FieldLogger) error {
	selected, err := ui.Start(cmd.Dir)
	if err != nil {
		return errors.Wrap(err, "StartInteractive error")
	}
	if selected == "" {
		logger.Info("no file selected")
		return nil
	}
	return StartFixing(FixCmd{From: selected, To: FixedName(selected)}, logger)
}

// Run dispatches to the chosen subcommand; without one it behaves like a
// bare `fix` with default paths.
func Run(args Args, out io.Writer, logger logrus.FieldLogger) error {
	switch {
	case args.Inspect != nil:
		return StartInspecting(*args.Inspect, out, logger)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive, logger)
	case args.Fix != nil:
		return StartFixing(*args.Fix, logger)
	default:
		return StartFixing(
			FixCmd{From: metadata.DefaultInput, To: metadata.DefaultOutput},
			logger,
		)
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	logger := logging.New(os.Stderr, args.Verbose)
	if err := Run(args, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("failed to restore metadata")
		os.Exit(1)
	}
}
