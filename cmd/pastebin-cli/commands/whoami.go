package commands

import (
	"pastebinkit/cmd/pastebin-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Shows the configured account's profile.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)
		account := login(cmd.Context(), client, cfg)

		details, err := account.Details(cmd.Context())
		if err != nil {
			fatal("failed to fetch account details", err)
		}

		t := utils.NewTable()
		t.AppendRows([]table.Row{
			{"username", details.Username},
			{"format", details.Format},
			{"expiration", details.Expiration},
			{"visibility", details.Visibility},
			{"website", details.Website},
			{"email", details.Email},
			{"location", details.Location},
			{"pro", details.Pro()},
		})
		t.Render()
	},
}
