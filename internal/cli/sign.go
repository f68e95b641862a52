package cli

import (
	"io"

	"github.com/comite-bacias/presenca/internal/model"
	"github.com/spf13/cobra"
)

func NewSignCommand(opts *RootOptions) *cobra.Command {
	var (
		recordID string
		fields   model.SignatureFields
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Register a signature on an open ATA",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			sig, change, err := s.store.SubmitSignature(recordID, fields)
			if err != nil {
				return err
			}
			if err := s.persist(cmd, change); err != nil {
				return err
			}

			return output(cmd, opts, sig, func(w io.Writer) {
				writeSignature(w, sig, sig.SignedAtDisplay(opts.Config.Location()))
			})
		}),
	}

	cmd.Flags().StringVar(&recordID, "record", "", "id of the ATA to sign")
	cmd.Flags().StringVar(&fields.SignerName, "name", "", "full name of the signer")
	cmd.Flags().StringVar(&fields.TaxID, "cpf", "", "CPF, digits or formatted")
	cmd.Flags().StringVar(&fields.Email, "email", "", "e-mail of the signer")
	cmd.Flags().StringVar(&fields.Organization, "org", "", "organization the signer represents")

	return cmd
}
