package datasource

import (
	"errors"
	"testing"
)

func sourceInState(s LoadingState) *StaticSource {
	src := NewStaticSource()
	src.SetLoadingState(s)
	return src
}

func TestAggregateLoadingHighestPrecedenceWins(t *testing.T) {
	e := errors.New("feed unavailable")
	c := NewComposed()
	loaded := sourceInState(LoadingState{Phase: PhaseLoaded})
	failed := sourceInState(ErrorState(e))
	loading := sourceInState(LoadingState{Phase: PhaseLoading})
	c.Add(loaded)
	c.Add(failed)
	c.Add(loading)

	if got := c.LoadingState(); got.Phase != PhaseLoading {
		t.Fatalf("aggregate = %q, want loading", got.Phase)
	}

	c.Remove(loading)
	got := c.LoadingState()
	if got.Phase != PhaseError {
		t.Fatalf("aggregate after remove = %q, want error", got.Phase)
	}
	if !errors.Is(got.Err, e) {
		t.Fatalf("aggregate error = %v, want %v", got.Err, e)
	}
}

func TestAggregateFirstErrorCauseWins(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	c := NewComposed()
	c.Add(sourceInState(ErrorState(e1)))
	c.Add(sourceInState(ErrorState(e2)))

	if got := c.LoadingState(); !errors.Is(got.Err, e1) {
		t.Fatalf("aggregate error = %v, want first child's cause", got.Err)
	}
}

func TestAggregatePrecedenceTable(t *testing.T) {
	cases := []struct {
		name   string
		phases []LoadingPhase
		want   LoadingPhase
	}{
		{"empty composite", nil, PhaseInitial},
		{"refreshing beats error", []LoadingPhase{PhaseError, PhaseRefreshing}, PhaseRefreshing},
		{"error beats no content", []LoadingPhase{PhaseNoContent, PhaseError}, PhaseError},
		{"no content beats loaded", []LoadingPhase{PhaseLoaded, PhaseNoContent}, PhaseNoContent},
		{"all loaded", []LoadingPhase{PhaseLoaded, PhaseLoaded}, PhaseLoaded},
		{"all initial", []LoadingPhase{PhaseInitial, PhaseInitial}, PhaseInitial},
	}
	for _, tc := range cases {
		c := NewComposed()
		for _, ph := range tc.phases {
			c.Add(sourceInState(LoadingState{Phase: ph}))
		}
		if got := c.LoadingState(); got.Phase != tc.want {
			t.Fatalf("%s: aggregate = %q, want %q", tc.name, got.Phase, tc.want)
		}
	}
}

func TestAggregateIncludesOwnState(t *testing.T) {
	c := NewComposed()
	c.Add(sourceInState(LoadingState{Phase: PhaseLoaded}))
	c.SetLoadingState(LoadingState{Phase: PhaseRefreshing})

	if got := c.LoadingState(); got.Phase != PhaseRefreshing {
		t.Fatalf("aggregate = %q, want own refreshing state to win", got.Phase)
	}
}

func TestAggregateCacheStaysUntilInvalidated(t *testing.T) {
	c := NewComposed()
	child := sourceInState(LoadingState{Phase: PhaseLoaded})
	c.Add(child)

	if got := c.LoadingState(); got.Phase != PhaseLoaded {
		t.Fatalf("aggregate = %q, want loaded", got.Phase)
	}

	// A silent state change is invisible until the child reports a
	// lifecycle event.
	child.SetLoadingState(LoadingState{Phase: PhaseNoContent})
	if got := c.LoadingState(); got.Phase != PhaseLoaded {
		t.Fatalf("aggregate = %q, silent change must not recompute", got.Phase)
	}

	child.NotifyDidLoad(nil)
	if got := c.LoadingState(); got.Phase != PhaseNoContent {
		t.Fatalf("aggregate = %q, want recompute after DidLoad", got.Phase)
	}
}

func TestWillLoadInvalidatesAndForwards(t *testing.T) {
	rec := &eventRecorder{}
	c := NewComposed()
	c.SetContainer(rec)
	child := sourceInState(LoadingState{Phase: PhaseLoaded})
	c.Add(child)
	if got := c.LoadingState(); got.Phase != PhaseLoaded {
		t.Fatalf("aggregate = %q, want loaded", got.Phase)
	}
	rec.reset()

	child.SetLoadingState(LoadingState{Phase: PhaseRefreshing})
	child.NotifyWillLoad()
	if _, ok := rec.last(t).(WillLoadContent); !ok {
		t.Fatalf("expected WillLoadContent forwarded, got %T", rec.last(t))
	}
	if got := c.LoadingState(); got.Phase != PhaseRefreshing {
		t.Fatalf("aggregate = %q, want refreshing after WillLoad", got.Phase)
	}
}

func TestDidLoadBatchesPendingUpdatesWhilePlaceholderShowing(t *testing.T) {
	rec := &eventRecorder{}
	c := NewComposed()
	c.SetContainer(rec)

	e := errors.New("boom")
	child := sourceInState(LoadingState{Phase: PhaseLoading})
	c.Add(child)
	rec.reset()

	ran := false
	c.EnqueueUpdate(func() { ran = true })
	if ran {
		t.Fatalf("update must be deferred while the placeholder is showing")
	}

	child.SetLoadingState(ErrorState(e))
	child.NotifyDidLoad(e)

	if len(rec.events) != 2 {
		t.Fatalf("event count = %d, want BatchUpdate then DidLoadContent", len(rec.events))
	}
	batch, ok := rec.events[0].ev.(BatchUpdate)
	if !ok {
		t.Fatalf("first event = %T, want BatchUpdate", rec.events[0].ev)
	}
	batch.Updates()
	if !ran {
		t.Fatalf("batched updates did not run")
	}
	done, ok := rec.events[1].ev.(DidLoadContent)
	if !ok {
		t.Fatalf("second event = %T, want DidLoadContent", rec.events[1].ev)
	}
	if !errors.Is(done.Err, e) {
		t.Fatalf("DidLoadContent err = %v, want %v", done.Err, e)
	}
}

func TestDidLoadSkipsBatchWhenContentVisible(t *testing.T) {
	rec := &eventRecorder{}
	c := NewComposed()
	c.SetContainer(rec)

	child := sourceInState(LoadingState{Phase: PhaseLoaded})
	c.Add(child)
	rec.reset()

	child.NotifyDidLoad(nil)
	if len(rec.events) != 1 {
		t.Fatalf("event count = %d, want only DidLoadContent", len(rec.events))
	}
	if _, ok := rec.events[0].ev.(DidLoadContent); !ok {
		t.Fatalf("event = %T, want DidLoadContent", rec.events[0].ev)
	}
}

func TestEnqueueUpdateRunsImmediatelyWithContent(t *testing.T) {
	c := NewComposed()
	c.Add(sourceInState(LoadingState{Phase: PhaseLoaded}))

	ran := false
	c.EnqueueUpdate(func() { ran = true })
	if !ran {
		t.Fatalf("update should run immediately when content is visible")
	}
}

func TestResetContentForwardsAndResets(t *testing.T) {
	c := NewComposed()
	child := sourceInState(LoadingState{Phase: PhaseLoaded})
	c.Add(child)
	c.SetLoadingState(LoadingState{Phase: PhaseRefreshing})

	c.ResetContent()
	if got := child.LoadingState(); got.Phase != PhaseInitial {
		t.Fatalf("child state after reset = %q, want initial", got.Phase)
	}
	if got := c.LoadingState(); got.Phase != PhaseInitial {
		t.Fatalf("aggregate after reset = %q, want initial", got.Phase)
	}
}

func TestLoadContentFansOut(t *testing.T) {
	c := NewComposed()
	a := newCountingLoader()
	b := newCountingLoader()
	c.Add(a)
	c.Add(b)

	c.LoadContent()
	if a.loads != 1 || b.loads != 1 {
		t.Fatalf("loads = %d/%d, want 1/1", a.loads, b.loads)
	}
}

type countingLoader struct {
	StaticSource
	loads int
}

func newCountingLoader() *countingLoader {
	l := &countingLoader{}
	l.Bind(l)
	return l
}

func (l *countingLoader) LoadContent() { l.loads++ }
