package cli

import (
	"fmt"
	"io"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/repository"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/comite-bacias/presenca/pkg/presenca"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// PortOpener opens the storage the commands work on.
type PortOpener func(cfg *config.Config, logger *zap.SugaredLogger) (attendance.Port, func() error, error)

// RootOptions holds global flags and the dependencies shared by every command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config   *config.Config
	OpenPort PortOpener
	// TmpDir overrides where PDF exports keep their intermediate files.
	TmpDir string
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the presenca CLI.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	return newRootCommand(&RootOptions{Config: cfg, OpenPort: repository.NewPort})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presenca",
		Short: "Manage attendance records and signatures",
		Long: `Create and close ATAs, register signatures, validate codes and export
attendance lists from the same storage the api server uses.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewRecordsCommand(opts))
	cmd.AddCommand(NewSignCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// session is one loaded store plus what is needed to persist and export from it.
type session struct {
	opts   *RootOptions
	logger *zap.SugaredLogger
	store  *attendance.Store
	close  func() error
}

func openSession(cmd *cobra.Command, opts *RootOptions) (*session, error) {
	logger := zap.NewNop().Sugar()
	if opts.Verbose {
		logger = util.NewLogger(opts.Config.ENV)
	}

	port, closePort, err := opts.OpenPort(opts.Config, logger)
	if err != nil {
		return nil, err
	}

	store := attendance.NewStore(port, attendance.WithLogger(logger))
	if err := store.Load(cmd.Context()); err != nil {
		closePort()
		return nil, err
	}

	return &session{opts: opts, logger: logger, store: store, close: closePort}, nil
}

func (s *session) persist(cmd *cobra.Command, change attendance.Change) error {
	return s.store.Persist(cmd.Context(), change)
}

func (s *session) exporter() *attendance.Exporter {
	pdfCfg := presenca.NewDefaultConfig(s.opts.Config.OrganizationName, s.opts.Config.AppURL)
	if s.opts.TmpDir != "" {
		pdfCfg.TmpDir = s.opts.TmpDir
	}
	return attendance.NewExporter(s.store, presenca.NewPDFGenerator(pdfCfg), s.opts.Config.Location())
}

// withSession opens the store for the duration of run.
func withSession(opts *RootOptions, run func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, opts)
		if err != nil {
			return err
		}
		defer s.close()

		return run(cmd, s, args)
	}
}

// output prints v as indented json or calls text to render it.
func output(cmd *cobra.Command, opts *RootOptions, v any, text func(w io.Writer)) error {
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	text(cmd.OutOrStdout())
	return nil
}
