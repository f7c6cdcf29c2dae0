package commands

import (
	"fmt"
	"io"
	"os"

	"pastebinkit/lib/pastebin"

	"github.com/spf13/cobra"
)

var pasteTitle *string
var pasteFormat *string
var pasteExpire *string
var pasteVisibility *string
var pasteAsAccount *bool

func init() {
	pasteTitle = pasteCmd.Flags().String("title", "", "Title of the paste.")
	pasteFormat = pasteCmd.Flags().String("format", "", "Syntax short code, e.g. 'go'.")
	pasteExpire = pasteCmd.Flags().String("expire", "N", "Expire token: N, 10M, 1H, 1D, 1W, 2W or 1M.")
	pasteVisibility = pasteCmd.Flags().String("visibility", "public", "public, unlisted or private.")
	pasteAsAccount = pasteCmd.Flags().Bool("account", false, "Attribute the paste to the configured account.")
	rootCmd.AddCommand(pasteCmd)
}

var pasteCmd = &cobra.Command{
	Use:   "paste [file]",
	Short: "Creates a paste from a file or stdin and prints its URL.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := newClient(cfg)

		contents, err := readContents(args)
		if err != nil {
			fatal("failed to read paste contents", err)
		}

		expire, ok := pastebin.ExpireDateFromToken(*pasteExpire)
		if !ok {
			fatal("unknown expire token", fmt.Errorf("%q", *pasteExpire))
		}
		visibility, err := parseVisibility(*pasteVisibility)
		if err != nil {
			fatal("unknown visibility", err)
		}

		paste := &pastebin.Paste{
			Contents:   contents,
			Title:      *pasteTitle,
			Format:     *pasteFormat,
			Expire:     expire,
			Visibility: visibility,
		}
		if *pasteAsAccount || visibility == pastebin.VisibilityPrivate {
			paste.Account = login(cmd.Context(), client, cfg)
		}

		link, err := client.CreatePaste(cmd.Context(), paste)
		if err != nil {
			fatal("failed to create paste", err)
		}
		fmt.Println(link.URL)
	},
}

func readContents(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func parseVisibility(name string) (pastebin.Visibility, error) {
	switch name {
	case "public":
		return pastebin.VisibilityPublic, nil
	case "unlisted":
		return pastebin.VisibilityUnlisted, nil
	case "private":
		return pastebin.VisibilityPrivate, nil
	}
	return 0, fmt.Errorf("%q is not public, unlisted or private", name)
}
