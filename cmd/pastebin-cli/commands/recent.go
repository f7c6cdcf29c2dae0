package commands

import (
	"pastebinkit/lib/pastebin"

	"github.com/spf13/cobra"
)

var recentLimit *int
var recentLang *string

func init() {
	recentLimit = recentCmd.Flags().Int("limit", 50, "Number of pastes to fetch, up to 250.")
	recentLang = recentCmd.Flags().String("lang", "", "Filter by syntax short code.")
	rootCmd.AddCommand(recentCmd)
}

var recentCmd = &cobra.Command{
	Use:   "recent [--limit <n>] [--lang <code>]",
	Short: "Lists the most recent public pastes (pro scraping API).",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		links, err := client.MostRecent(cmd.Context(), pastebin.ScrapeOptions{
			Limit: *recentLimit,
			Lang:  *recentLang,
		})
		if err != nil {
			fatal("failed to fetch recent pastes", err)
		}
		renderLinks(links)
	},
}
