package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/radial/internal/canvas"
	"github.com/olivier-w/radial/internal/config"
	"github.com/olivier-w/radial/internal/radial"
	"github.com/olivier-w/radial/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// PNG output is scaled so a 256px image draws widths at one pixel per dp.
const pngBaseSize = 256

type options struct {
	configPath string
	statePath  string
	pngPath    string
	pngSize    int
	progress   float64
	logPath    string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "radial",
		Short: "Circular progress indicator for the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("progress") {
				cfg.View.Progress = opts.progress
			}

			log, closeLog, err := newLogger(opts.logPath)
			if err != nil {
				return err
			}
			defer closeLog()

			if opts.pngPath != "" {
				return renderPNG(cfg, opts.pngPath, opts.pngSize, log)
			}
			return runTUI(cfg, resolveStatePath(opts.statePath, cfg.StateFile), log)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file with widget configuration")
	cmd.Flags().StringVar(&opts.statePath, "state", "", "state file for the progress snapshot")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "render one frame to a PNG file and exit")
	cmd.Flags().IntVar(&opts.pngSize, "size", pngBaseSize, "PNG size in pixels")
	cmd.Flags().Float64Var(&opts.progress, "progress", 0, "initial progress")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "write debug logs to this file")
	return cmd
}

// newLogger logs to path at debug level, or nowhere when path is empty. The
// TUI owns the terminal, so there is no stderr fallback.
func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { f.Close() }, nil
}

func renderPNG(cfg config.Config, path string, size int, log logrus.FieldLogger) error {
	if size <= 0 {
		return fmt.Errorf("invalid png size %d", size)
	}
	view := radial.New(cfg.View)
	view.SetDensity(float64(size) / pngBaseSize)

	surface := canvas.NewRaster(size)
	view.Draw(surface)
	if err := surface.SavePNG(path); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"path": path, "size": size}).Info("rendered png")
	return nil
}

func runTUI(cfg config.Config, statePath string, log logrus.FieldLogger) error {
	view := radial.New(cfg.View)
	model := ui.New(view, cfg.Animation, ui.WithLogger(log))

	state, err := loadState(statePath)
	switch {
	case err != nil:
		log.WithError(err).WithField("path", statePath).Warn("ignoring saved state")
	case state != nil:
		model.Restore(state)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if err := saveState(statePath, m.Snapshot()); err != nil {
		log.WithError(err).WithField("path", statePath).Warn("could not save state")
	}
	return nil
}
