package commands

import (
	"pastebinkit/lib/pastebin"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(metaCmd)
}

var metaCmd = &cobra.Command{
	Use:   "meta <key>",
	Short: "Shows the metadata of one paste (pro scraping API).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		link, err := client.PasteMetadata(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch paste metadata", err)
		}
		renderLinks([]*pastebin.PasteLink{link})
	},
}
