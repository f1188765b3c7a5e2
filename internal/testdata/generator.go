package testdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jask/gridsource/internal/database"
	"github.com/jask/gridsource/internal/database/repository"
)

var sampleTitles = []string{
	"Standup notes",
	"Deploy rolled out",
	"Backlog groomed",
	"Incident follow-up",
	"Pairing session",
	"Docs updated",
	"Flaky test quarantined",
	"Release tagged",
}

var sampleKinds = []string{"note", "event", "alert"}

// Seed inserts n sample entries spread over the last few days. Safe to call
// repeatedly; fresh IDs mean fresh rows.
func Seed(ctx context.Context, repo *repository.EntryRepo, n int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		day := now.AddDate(0, 0, -rng.Intn(5))
		e := repository.Entry{
			ID:    uuid.NewString(),
			Day:   database.Day(day),
			Title: sampleTitles[rng.Intn(len(sampleTitles))],
			Kind:  sampleKinds[rng.Intn(len(sampleKinds))],
		}
		if err := repo.Upsert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
