package cli

import (
	"fmt"

	"github.com/comite-bacias/presenca/internal/auth"
	"github.com/spf13/cobra"
)

// NewHashPasswordCommand prints a bcrypt hash to use as ADMIN_PASSWORD_HASH.
func NewHashPasswordCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of an admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
