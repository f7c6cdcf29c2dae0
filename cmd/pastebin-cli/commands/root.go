package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pastebinkit/lib/configutil"
	"pastebinkit/lib/pastebin"
	"pastebinkit/lib/restyutil"
	"pastebinkit/lib/telemetry"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pastebin-cli",
	Short: "pastebin-cli creates, lists and fetches pastes through the pastebin.com API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !*debugHttp {
			return
		}
		telemetry.InitSlog(true)
		output, err := restyutil.NewFilesystemOutput(".dev/resty/pastebin-cli")
		if err != nil {
			fatal("failed to create transcript directory", err)
		}
		pastebin.SetRestyInstrumentOutput(output)
	},
}

var debugHttp *bool

func init() {
	debugHttp = rootCmd.PersistentFlags().Bool(
		"debug-http", false,
		"Dump full request/response transcripts to .dev/resty/pastebin-cli.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

// Config is read from pastebin.json5 (with pastebin.local.json5 overrides).
type Config struct {
	DevKey   string `json:"dev_key"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadRecursively[Config]("pastebin.json5")
	if err != nil {
		fatal("failed to read pastebin.json5", err)
	}
	return cfg
}

func newClient(cfg Config) *pastebin.Client {
	return pastebin.NewClient(pastebin.ClientOptions{DevKey: cfg.DevKey})
}

func login(ctx context.Context, client *pastebin.Client, cfg Config) *pastebin.Account {
	account := client.NewAccount(cfg.Username, cfg.Password)
	err := account.Login(ctx)
	if err != nil {
		fatal("failed to login", err)
	}
	return account
}
