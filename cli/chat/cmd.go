package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/configuration"
	"github.com/malonaz/docchat/internal/conversation"
)

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		DeepThink bool
	}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Upload documents and converse with the assistant about them",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Clipboard support is best-effort: without it Alt+W is inert.
			_ = clipboard.Init()

			deepThink := config.Chat.DefaultDeepThink || opts.DeepThink
			registry := conversation.NewRegistry(client, deepThink)

			m := New(ctx, config, client, registry)
			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running chat: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.DeepThink, "deep-think", "t", false, "Start sessions in deep-think mode (initial answer, critique, final answer)")
	return cmd
}
