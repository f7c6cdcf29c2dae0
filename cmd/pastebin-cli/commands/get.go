package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Prints the raw contents of a paste.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		contents, err := client.RawContent(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch paste", err)
		}
		fmt.Print(contents)
	},
}
