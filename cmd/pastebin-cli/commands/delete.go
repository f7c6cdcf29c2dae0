package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Deletes one of the configured account's pastes.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)
		account := login(cmd.Context(), client, cfg)

		key := args[0]
		links, err := account.Pastes(cmd.Context(), 1000)
		if err != nil {
			fatal("failed to list pastes", err)
		}
		for _, link := range links {
			if link.Key != key {
				continue
			}
			err = link.Delete(cmd.Context(), account)
			if err != nil {
				fatal("failed to delete paste", err)
			}
			fmt.Println("paste removed")
			return
		}
		fatal("paste not found", fmt.Errorf("no paste with key %q on this account", key))
	},
}
