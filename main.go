package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/malonaz/docchat/cli/ask"
	"github.com/malonaz/docchat/cli/chat"
	newcmd "github.com/malonaz/docchat/cli/new"
	"github.com/malonaz/docchat/cli/upload"
	"github.com/malonaz/docchat/internal/api"
	"github.com/malonaz/docchat/internal/cli"
	"github.com/malonaz/docchat/internal/configuration"
)

const configFilepath = "~/.docchat/config.json"

var rootCmd = &cobra.Command{
	Use:           "docchat",
	Short:         "A CLI for chatting with your documents",
	SilenceErrors: true,
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	// Instantiate the document-chat server client.
	client := api.NewClient(config.ServerURL, time.Duration(config.RequestTimeout)*time.Second)

	rootCmd.AddCommand(chat.NewCmd(config, client))
	rootCmd.AddCommand(ask.NewCmd(config, client))
	rootCmd.AddCommand(upload.NewCmd(config, client))
	rootCmd.AddCommand(newcmd.NewCmd(client))
	if err := rootCmd.Execute(); err != nil {
		cli.Error("Error: %s\n", err)
		os.Exit(1)
	}
}
