// Package ask implements the one-shot question command.
package ask

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/cli"
	"github.com/malonaz/docchat/internal/configuration"
	"github.com/malonaz/docchat/internal/conversation"
	"github.com/malonaz/docchat/internal/markdown"
)

const renderWidth = 100

// NewCmd instantiates and returns the ask command.
func NewCmd(config *configuration.Config, client *api.Client) *cobra.Command {
	var opts struct {
		ChatID    string
		DeepThink bool
	}
	cmd := &cobra.Command{
		Use:   "ask [QUESTION]",
		Short: "Ask a single question about a session's documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				cli.Title("Ask about your documents")
				input, err := cli.PromptUser()
				if err != nil {
					return errors.Wrap(err, "prompting for question")
				}
				question = strings.TrimSpace(input)
			}
			if question == "" {
				return errors.New("question is empty")
			}

			cli.Separator()
			cli.Question("%s\n", question)

			deepThink := opts.DeepThink || config.Chat.DefaultDeepThink
			request := &api.AskRequest{
				ChatID:    opts.ChatID,
				Question:  question,
				DeepThink: deepThink,
			}
			answer, err := client.Ask(cmd.Context(), request)
			if err != nil {
				return errors.Wrap(err, "asking question")
			}

			renderer, err := markdown.NewRenderer(renderWidth)
			if err != nil {
				return errors.Wrap(err, "creating renderer")
			}

			switch answer := answer.(type) {
			case *api.DirectAnswer:
				cli.Separator()
				cli.Answer("%s\n", renderer.Render(answer.Text))

			case *api.DeepThinkAnswer:
				stages := []struct {
					kind conversation.Kind
					text string
				}{
					{conversation.KindInitial, answer.Initial},
					{conversation.KindCritique, answer.Critique},
					{conversation.KindFinal, answer.Final},
				}
				for _, stage := range stages {
					cli.Separator()
					cli.StageLabel("%s\n", stage.kind.Label())
					cli.Answer("%s\n", renderer.Render(stage.text))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.ChatID, "chat", "", "id of the chat session to ask")
	cmd.Flags().BoolVarP(&opts.DeepThink, "deep-think", "t", false, "Use the three-stage deep-think pipeline")
	cmd.MarkFlagRequired("chat")
	return cmd
}
