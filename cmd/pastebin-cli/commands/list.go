package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listLimit *int

func init() {
	listLimit = listCmd.Flags().Int("limit", 50, "Maximum number of pastes to list (1-1000).")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [--limit <n>]",
	Short: "Lists the configured account's pastes.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)
		account := login(cmd.Context(), client, cfg)

		links, err := account.Pastes(cmd.Context(), *listLimit)
		if err != nil {
			fatal("failed to list pastes", err)
		}
		if len(links) == 0 {
			fmt.Println("no pastes found")
			return
		}
		renderLinks(links)
	},
}
