package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/olivier-w/vitrine/internal/logging"
	"github.com/olivier-w/vitrine/internal/portfolio"
	"github.com/olivier-w/vitrine/internal/shuffle"
	"github.com/olivier-w/vitrine/internal/ui"
	"github.com/olivier-w/vitrine/internal/watch"
)

type rootOptions struct {
	seed          int64
	reducedMotion bool
	watch         bool
	logFile       string
	debug         bool
	inline        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "vitrine [document.yaml]",
		Short: "Show a portfolio page in the terminal",
		Long: `vitrine renders a portfolio document as a scrollable page with a
rotating headline word and a shuffled project grid.

Without a document the built-in sample is shown.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(opts, documentArg(args))
		},
	}

	flags := cmd.PersistentFlags()
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the project order (0 = random)")
	cmd.Flags().BoolVar(&opts.reducedMotion, "reduced-motion", false, "jump instead of scrolling and skip headline transitions")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the document when it changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "run without the alternate screen")

	cmd.AddCommand(newOrderCmd(opts))
	return cmd
}

func documentArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// loadDocument reads path, or the built-in sample when path is empty.
func loadDocument(path string) (*portfolio.Portfolio, error) {
	if path == "" {
		return portfolio.Default()
	}
	return portfolio.Load(path)
}

func newShuffler(seed int64) *shuffle.Engine {
	if seed == 0 {
		return shuffle.New(nil)
	}
	return shuffle.NewSeeded(seed)
}

func runPage(opts *rootOptions, path string) error {
	if opts.watch && path == "" {
		return fmt.Errorf("--watch needs a document path")
	}

	logger, err := logging.New(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	pageOpts := ui.Options{
		Shuffler:      newShuffler(opts.seed),
		Logger:        logger,
		ReducedMotion: opts.reducedMotion,
	}
	if opts.watch {
		w, err := watch.New(path, watch.DefaultDebounce, nil, logger.Named("watch"))
		if err != nil {
			return err
		}
		defer w.Close()
		pageOpts.Changes = w.Changes()
		pageOpts.Reload = func() (*portfolio.Portfolio, error) {
			return portfolio.Load(path)
		}
	}

	page := ui.NewPage(doc, pageOpts)

	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !opts.inline {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	logger.Info("starting", zap.String("document", doc.Source), zap.Int64("seed", opts.seed))
	finalModel, err := tea.NewProgram(page, programOpts...).Run()
	closePages(page, finalModel)
	return err
}

// closePages stops the headline of the initial page and of the page the
// program ended with, which differ once a reload has replaced the runner.
func closePages(initial ui.Page, finalModel tea.Model) {
	initial.Close()
	if p, ok := finalModel.(ui.Page); ok {
		p.Close()
	}
}
