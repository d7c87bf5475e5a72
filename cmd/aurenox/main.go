package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aurenox/aurenox/app"
	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/config"
	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/database"
	"github.com/aurenox/aurenox/internal/database/repository"
	"github.com/aurenox/aurenox/internal/icon"
	"github.com/aurenox/aurenox/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		log.Printf("warn: logging disabled: %v", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	client := content.NewHTTPClient(cfg.Content.BaseURL, cfg.Content.Timeout, logger)
	pipeOpts := []contact.Option{contact.WithLogger(logger)}
	deps := app.Deps{
		Loader:     content.NewAggregator(client, logger),
		Icons:      icon.NewResolver(icon.Embedded, logger),
		BaseURL:    client.BaseURL(),
		Threshold:  cfg.UI.SectionThreshold,
		ScrollStep: cfg.UI.ScrollStep,
		Log:        logger,
	}

	if cfg.Journal.Path != "" {
		db, err := database.OpenMigrated(cfg.Journal.Path)
		if err != nil {
			logger.Error("open journal", zap.String("path", cfg.Journal.Path), zap.Error(err))
		} else {
			defer db.Close()
			repo := repository.NewSubmissionRepo(db)
			pipeOpts = append(pipeOpts, contact.WithJournal(journal(repo)))
			deps.History = repo.List
		}
	}
	deps.Pipeline = contact.New(client, pipeOpts...)

	bindings := core.DefaultKeyBindings()
	if len(cfg.Keys) > 0 {
		bindings = core.ApplyActionKeybindings(bindings, cfg.Keys)
	}
	page := app.NewPage(deps)
	model := app.NewModel(page, core.NewKeyRegistry(bindings), cfg.UI.MobileBreakpoint)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	page.Dispose()
}

func journal(repo *repository.SubmissionRepo) contact.Journal {
	return contact.JournalFunc(func(ctx context.Context, r contact.Record) error {
		_, err := repo.Append(ctx, repository.Submission{
			Name:      r.Form.Name,
			Email:     r.Form.Email,
			Message:   r.Form.Message,
			Outcome:   string(r.Outcome),
			Detail:    r.Detail,
			CreatedAt: database.Now(),
		})
		return err
	})
}
