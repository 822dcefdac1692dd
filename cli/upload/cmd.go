// Package upload implements the one-shot document upload command.
package upload

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/cli"
	"github.com/malonaz/docchat/internal/configuration"
	"github.com/malonaz/docchat/internal/file"
)

// NewCmd instantiates and returns the upload command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		ChatID string
	}
	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload documents into a chat session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The extension check is advisory: the server decides what it
			// accepts, we only warn before spending the bandwidth.
			for _, path := range args {
				exists, err := file.Exists(path)
				if err != nil {
					return errors.Wrap(err, "checking file")
				}
				if !exists {
					return errors.Errorf("no such file: %s", path)
				}
				if file.IsRecognizedDocument(path, config.Upload.FileExtensions) {
					continue
				}
				question := fmt.Sprintf("%s is not a recognized document type. Upload it anyway?", path)
				if !cli.QueryUser(question) {
					return errors.New("upload aborted")
				}
			}

			files, err := file.Read(args)
			if err != nil {
				return errors.Wrap(err, "reading documents")
			}
			for _, f := range files {
				cli.FileInfo("📎 %s\n", f.Path)
			}

			if err := client.UploadDocuments(cmd.Context(), opts.ChatID, files); err != nil {
				return errors.Wrap(err, "uploading documents")
			}
			cli.Success("Uploaded %d document(s) to session %s\n", len(files), opts.ChatID)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.ChatID, "chat", "", "id of the chat session to upload into")
	cmd.MarkFlagRequired("chat")
	return cmd
}
