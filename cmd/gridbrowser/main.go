package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/internal/config"
	"github.com/jask/gridsource/internal/database"
	"github.com/jask/gridsource/internal/database/repository"
	"github.com/jask/gridsource/internal/sources"
	"github.com/jask/gridsource/internal/testdata"
	"github.com/jask/gridsource/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	entryRepo := repository.NewEntryRepo(db)

	// seed demo content on first run
	if n, err := entryRepo.Count(ctx); err != nil {
		log.Fatalf("count entries: %v", err)
	} else if n == 0 && cfg.UI.SeedEntries > 0 {
		if err := testdata.Seed(ctx, entryRepo, cfg.UI.SeedEntries); err != nil {
			log.Fatalf("seed entries: %v", err)
		}
	}

	composite := datasource.NewComposed()
	composite.SetDefaultMetrics(datasource.SectionMetrics{
		RowHeight: cfg.UI.RowHeight,
		Accent:    cfg.UI.Accent,
	})

	welcome := datasource.NewStaticSource(datasource.StaticSection{
		Title: "Welcome",
		Items: []string{
			"j/k move, g jump, r refresh",
			"a add a scratch source, x remove the source under the cursor",
		},
	})
	composite.Add(welcome)
	composite.Add(sources.NewEntrySource(ctx, entryRepo))

	p := tea.NewProgram(tui.New(cfg, composite), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
