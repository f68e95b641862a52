package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
)

var ErrCodeNotFound = errors.New("código de validação não encontrado")

func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Look up a signature by its validation code",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, func(cmd *cobra.Command, s *session, args []string) error {
			sig, ok := s.store.FindSignatureByCode(args[0])
			if !ok {
				return ErrCodeNotFound
			}

			return output(cmd, opts, sig, func(w io.Writer) {
				writeSignature(w, sig, sig.SignedAtDisplay(opts.Config.Location()))
			})
		}),
	}
}
