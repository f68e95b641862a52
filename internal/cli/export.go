package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/spf13/cobra"
)

func NewExportCommand(opts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export attendance lists as CSV or PDF",
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", ".", "directory the file is written to")

	csvCmd := &cobra.Command{
		Use:   "csv [record-id]",
		Short: "Export the signatures of one ATA, or of every ATA when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			recordID := ""
			if len(args) == 1 {
				recordID = args[0]
			}

			file, err := s.exporter().CSV(recordID)
			if err != nil {
				return err
			}
			return writeExport(cmd, dir, file)
		}),
	}

	pdfCmd := &cobra.Command{
		Use:   "pdf <record-id>",
		Short: "Render the attendance list of one ATA as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			file, err := s.exporter().PDF(args[0])
			if err != nil {
				return err
			}
			return writeExport(cmd, dir, file)
		}),
	}

	cmd.AddCommand(csvCmd, pdfCmd)
	return cmd
}

var separatorReplacer = strings.NewReplacer("/", "-", "\\", "-")

// Titles may contain "/", which must not become a directory.
func exportPath(dir, filename string) string {
	return filepath.Join(dir, separatorReplacer.Replace(filename))
}

func writeExport(cmd *cobra.Command, dir string, file *attendance.ExportFile) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := exportPath(dir, file.Filename)
	if err := os.WriteFile(path, file.Content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
