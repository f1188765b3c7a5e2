package sources

import (
	"context"
	"fmt"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/internal/database/repository"
)

// EntrySource exposes stored entries as one section per day, newest first.
//
// LoadContent queries the store synchronously and reports the resulting
// structural change coarsely: sections present in both layouts reload, the
// tail inserts or removes. Call it from the goroutine that owns the view.
type EntrySource struct {
	datasource.Base
	ctx  context.Context
	repo *repository.EntryRepo
	days []daySection
}

type daySection struct {
	day     string
	entries []repository.Entry
}

func NewEntrySource(ctx context.Context, repo *repository.EntryRepo) *EntrySource {
	s := &EntrySource{ctx: ctx, repo: repo}
	s.Bind(s)
	return s
}

func (s *EntrySource) SectionCount() int { return len(s.days) }

func (s *EntrySource) ItemCount(section int) int { return len(s.days[section].entries) }

func (s *EntrySource) Item(view datasource.View, path datasource.IndexPath) datasource.Cell {
	e := s.days[path.Section].entries[path.Item]
	return datasource.TextCell(fmt.Sprintf("[%s] %s", e.Kind, e.Title))
}

func (s *EntrySource) SectionTitle(section int) string { return s.days[section].day }

// ItemSize and HeaderSize answer size-fitting queries against the view's
// current width.
func (s *EntrySource) ItemSize(view datasource.View, path datasource.IndexPath) datasource.Size {
	w, _ := view.Size()
	return datasource.Size{Width: w, Height: 1}
}

func (s *EntrySource) HeaderSize(view datasource.View, section int) datasource.Size {
	w, _ := view.Size()
	return datasource.Size{Width: w, Height: 2}
}

// LoadContent fetches entries and emits the implied structural events
// followed by the load lifecycle.
func (s *EntrySource) LoadContent() {
	if s.LoadingState().Phase == datasource.PhaseLoaded {
		s.SetLoadingState(datasource.LoadingState{Phase: datasource.PhaseRefreshing})
	} else {
		s.SetLoadingState(datasource.LoadingState{Phase: datasource.PhaseLoading})
	}
	s.NotifyWillLoad()

	entries, err := s.repo.List(s.ctx)
	if err != nil {
		s.SetLoadingState(datasource.ErrorState(fmt.Errorf("list entries: %w", err)))
		s.NotifyDidLoad(err)
		return
	}

	old := len(s.days)
	s.days = groupByDay(entries)

	if len(s.days) == 0 {
		s.SetLoadingState(datasource.LoadingState{Phase: datasource.PhaseNoContent})
	} else {
		s.SetLoadingState(datasource.LoadingState{Phase: datasource.PhaseLoaded})
	}

	if common := min(old, len(s.days)); common > 0 {
		s.NotifySectionsReloaded(span(0, common))
	}
	switch {
	case len(s.days) > old:
		s.NotifySectionsInserted(span(old, len(s.days)-old), datasource.DirectionNone)
	case len(s.days) < old:
		s.NotifySectionsRemoved(span(len(s.days), old-len(s.days)), datasource.DirectionNone)
	}
	s.NotifyDidLoad(nil)
}

// ResetContent drops the cached sections along with the base bookkeeping.
func (s *EntrySource) ResetContent() {
	s.days = nil
	s.Base.ResetContent()
}

func groupByDay(entries []repository.Entry) []daySection {
	var out []daySection
	for _, e := range entries {
		if len(out) == 0 || out[len(out)-1].day != e.Day {
			out = append(out, daySection{day: e.Day})
		}
		out[len(out)-1].entries = append(out[len(out)-1].entries, e)
	}
	return out
}

func span(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
