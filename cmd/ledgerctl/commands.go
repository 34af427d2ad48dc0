package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/export"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// runContext is bound to every command's Run method.
type runContext struct {
	cfg    *config.Config
	stdout io.Writer
	now    func() time.Time
}

func (r *runContext) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

// open connects to the configured database and wires the use cases.
// Commands read straight from the database, so no report cache is attached.
func (r *runContext) open() (*dependency.Injector, func(), error) {
	database, err := db.NewConnection(&r.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	if r.cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(model.All()...); err != nil {
			closeFn()
			return nil, nil, err
		}
	}
	return dependency.NewInjector(r.cfg, database.DB(), dependency.Options{Now: r.now}), closeFn, nil
}

type migrateCmd struct{}

func (m *migrateCmd) Run(r *runContext) error {
	database, err := db.NewConnection(&r.cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(model.All()...); err != nil {
		return err
	}
	fmt.Fprintln(r.stdout, "schema up to date")
	return nil
}

type exportCmd struct {
	User   string `required:"" help:"Owner ID (UUID)."`
	From   string `required:"" help:"First day of the range (YYYY-MM-DD)."`
	To     string `required:"" help:"Last day of the range (YYYY-MM-DD)."`
	Format string `default:"csv" enum:"csv,xlsx" help:"Document format."`
	Out    string `help:"Output file or directory. Defaults to the generated file name in the working directory." type:"path"`
}

func (e *exportCmd) Run(r *runContext) error {
	userID, err := uuid.Parse(e.User)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	start, err := valueobject.ParseDate(e.From)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	end, err := valueobject.ParseDate(e.To)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	injector, closeFn, err := r.open()
	if err != nil {
		return err
	}
	defer closeFn()

	output, err := injector.Export.Execute(context.Background(), export.ExportTransactionsInput{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Format:    export.Format(e.Format),
	})
	if err != nil {
		return err
	}

	path := exportPath(e.Out, output.Document.Filename)
	if err := os.WriteFile(path, output.Document.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(r.stdout, "wrote %d transactions to %s\n", output.Document.Rows, path)
	return nil
}

// exportPath resolves --out: empty means the working directory, a directory
// receives the generated file name.
func exportPath(out, filename string) string {
	if out == "" {
		return filename
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, filename)
	}
	return out
}

type summaryCmd struct {
	User  string `required:"" help:"Owner ID (UUID)."`
	Month int    `help:"Month (1-12). Defaults to the current month."`
	Year  int    `help:"Year. Defaults to the current year."`
}

// summaryReport is the JSON document printed by the summary command.
type summaryReport struct {
	Summary *dashboard.GetSummaryOutput     `json:"summary"`
	Budgets *budget.GetBudgetProgressOutput `json:"budgets"`
	Goals   *goal.GetGoalProgressOutput     `json:"goals"`
}

func (s *summaryCmd) Run(r *runContext) error {
	userID, err := uuid.Parse(s.User)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	now := r.clock()
	month, year := s.Month, s.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	injector, closeFn, err := r.open()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := context.Background()
	summary, err := injector.Summary.Execute(ctx, dashboard.GetSummaryInput{UserID: userID, Month: month, Year: year})
	if err != nil {
		return err
	}
	budgets, err := injector.BudgetProgress.Execute(ctx, budget.GetBudgetProgressInput{UserID: userID, Month: month, Year: year})
	if err != nil {
		return err
	}
	goals, err := injector.GoalProgress.Execute(ctx, goal.GetGoalProgressInput{UserID: userID})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(r.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summaryReport{Summary: summary, Budgets: budgets, Goals: goals})
}
