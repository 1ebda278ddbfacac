// Command bytegram renders the byte-pair histogram of a file as an image.
//
// Usage:
//
//	bytegram [flags] <file>
//
// The image is written as <file base name>.<format> in the output
// directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/wbrown/bytegram"
	"github.com/wbrown/bytegram/internal/config"
	"github.com/wbrown/bytegram/internal/logger"
	"github.com/wbrown/bytegram/internal/report"
)

var (
	// ErrNoInput is returned when no input file is given.
	ErrNoInput = errors.New("no input file given")
	// ErrOutputIsInput is returned when an image or report would be
	// written over the input file or the config file.
	ErrOutputIsInput = errors.New("output would overwrite an input file")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Fatal("%v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("bytegram", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.StringP("config", "c", "", "path to a YAML config file")
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bytegram [flags] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := config.New()
	if err := config.BindFlags(v, fs); err != nil {
		return err
	}
	cfg, err := config.Load(v, *configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.SetOutput(stderr)

	if fs.NArg() != 1 {
		fs.Usage()
		return ErrNoInput
	}
	input := fs.Arg(0)

	images := bytegram.NewImageRenderer(
		bytegram.WithOutputDir(cfg.Output.Dir),
		bytegram.WithFormat(cfg.Output.Format),
		bytegram.WithScale(cfg.Output.Scale),
		bytegram.WithColormap(cfg.Output.Colormap),
		bytegram.WithCaption(cfg.Output.Caption),
	)
	output := images.Path(input)
	protected := []string{input}
	if *configPath != "" {
		protected = append(protected, *configPath)
	}
	if err := checkOutput(output, protected...); err != nil {
		return err
	}
	reportPath := report.PathFor(output)
	if cfg.Report.Enabled {
		if err := checkOutput(reportPath, protected...); err != nil {
			return err
		}
	}

	begin := time.Now()
	d, err := bytegram.FromFile(input)
	if err != nil {
		return err
	}
	logger.Debug("read %d bytes, %d pairs (%d distinct) in %v",
		d.Size, d.Histogram.Pairs(), d.Histogram.Distinct(), time.Since(begin))

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := images.Render(d.Source, d.Matrix); err != nil {
		return err
	}
	logger.Info("wrote %s", output)

	if cfg.Preview.Enabled {
		width := cfg.Preview.Width
		if width == 0 {
			width = terminalWidth(stdout)
		}
		preview := bytegram.NewAnsiRenderer(stdout, width, cfg.Output.Colormap)
		if err := preview.Render(d.Source, d.Matrix); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
	}

	// The image is already on disk, so a failed report does not fail the run.
	if cfg.Report.Enabled {
		if err := report.New(d, output).Write(reportPath); err != nil {
			logger.Error("%v", err)
		} else {
			logger.Info("wrote %s", reportPath)
		}
	}

	logger.Debug("total time %v", time.Since(begin))
	return nil
}

// checkOutput fails with ErrOutputIsInput when output names the same file
// as any of inputs.
func checkOutput(output string, inputs ...string) error {
	for _, in := range inputs {
		if sameFile(output, in) {
			return fmt.Errorf("%w: %s", ErrOutputIsInput, output)
		}
	}
	return nil
}

// sameFile compares by file identity when both paths exist, so links and
// alternate spellings are caught, and by absolute path otherwise.
func sameFile(a, b string) bool {
	sa, errA := os.Stat(a)
	sb, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(sa, sb)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// terminalWidth returns the column count of w when it is a terminal, or
// DefaultPreviewWidth otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return bytegram.DefaultPreviewWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		logger.Warn("could not read terminal size: %v", err)
		return bytegram.DefaultPreviewWidth
	}
	if cols > bytegram.Symbols {
		cols = bytegram.Symbols
	}
	return cols
}
