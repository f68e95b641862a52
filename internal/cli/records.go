package cli

import (
	"fmt"
	"io"

	"github.com/comite-bacias/presenca/internal/model"
	"github.com/spf13/cobra"
)

func NewRecordsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"atas"},
		Short:   "List, create and open or close ATAs",
	}

	cmd.AddCommand(newRecordsListCommand(opts))
	cmd.AddCommand(newRecordsCreateCommand(opts))
	cmd.AddCommand(newRecordsToggleCommand(opts))

	return cmd
}

func newRecordsListCommand(opts *RootOptions) *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ATAs with their signature counts",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			records := s.store.ListRecords()
			if openOnly {
				records = s.store.OpenRecords()
			}

			counts := make(map[string]int, len(records))
			for _, r := range records {
				counts[r.ID] = s.store.CountSignatures(r.ID)
			}

			return output(cmd, opts, records, func(w io.Writer) {
				writeRecords(w, records, counts)
			})
		}),
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "only ATAs open for signatures")
	return cmd
}

func newRecordsCreateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <title>",
		Short: "Create an open ATA",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			record, change, err := s.store.CreateRecord(args[0])
			if err != nil {
				return err
			}
			if err := s.persist(cmd, change); err != nil {
				return err
			}

			return output(cmd, opts, record, func(w io.Writer) {
				fmt.Fprintf(w, "ATA criada com sucesso! %s\n", record.ID)
			})
		}),
	}
}

func newRecordsToggleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <record-id>",
		Short: "Close an open ATA or reopen a closed one",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			record, change, err := s.store.ToggleRecordStatus(args[0])
			if err != nil {
				return err
			}
			if err := s.persist(cmd, change); err != nil {
				return err
			}

			return output(cmd, opts, record, func(w io.Writer) {
				if record.Status == model.RecordStatusOpen {
					fmt.Fprintf(w, "ATA %s reaberta para assinaturas.\n", record.ID)
				} else {
					fmt.Fprintf(w, "ATA %s fechada para assinaturas.\n", record.ID)
				}
			})
		}),
	}
}
