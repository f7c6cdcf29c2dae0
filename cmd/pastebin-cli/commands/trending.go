package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trendingCmd)
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Lists the currently trending pastes.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		links, err := client.Trending(cmd.Context())
		if err != nil {
			fatal("failed to fetch trending pastes", err)
		}
		renderLinks(links)
	},
}
