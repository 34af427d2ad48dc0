// Package main is the ledgerctl command line tool: offline exports and reports
// computed against the same database as the API.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/finance-tracker/ledger/config"
)

// Globals holds options shared by every command.
type Globals struct {
	Verbose bool `help:"Enable debug logging." short:"v"`
}

var cli struct {
	Globals `embed:""`

	Migrate migrateCmd `cmd:"" help:"Create or update the database schema."`
	Export  exportCmd  `cmd:"" help:"Export an owner's transactions to a CSV or XLSX file."`
	Summary summaryCmd `cmd:"" help:"Print an owner's monthly summary, budget progress and goals as JSON."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("ledgerctl"),
		kong.Description("Personal finance ledger tooling."),
		kong.UsageOnError(),
	)

	cfg := config.Load()
	level := cfg.Log.SlogLevel()
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run(&runContext{cfg: cfg, stdout: os.Stdout})
	ctx.FatalIfErrorf(err)
}
