// Package new implements session creation for scripting: it prints the
// server-issued chat id so upload and ask can target it.
package new

import (
	"github.com/spf13/cobra"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/cli"
)

// NewCmd instantiates and returns the new command.
func NewCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a new chat session and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := client.CreateChat(cmd.Context())
			if err != nil {
				return err
			}
			cli.Success("%s\n", chatID)
			return nil
		},
	}
}
