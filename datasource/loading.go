package datasource

// LoadingPhase names a stage of a data source's content lifecycle.
type LoadingPhase string

const (
	PhaseInitial    LoadingPhase = ""
	PhaseLoading    LoadingPhase = "loading"
	PhaseRefreshing LoadingPhase = "refreshing"
	PhaseLoaded     LoadingPhase = "loaded"
	PhaseNoContent  LoadingPhase = "noContent"
	PhaseError      LoadingPhase = "error"
)

// LoadingState describes where a data source is in its content lifecycle.
// Err is set only when Phase is PhaseError.
type LoadingState struct {
	Phase LoadingPhase
	Err   error
}

// ErrorState wraps a load failure as a loading state.
func ErrorState(err error) LoadingState {
	return LoadingState{Phase: PhaseError, Err: err}
}

// Placeholder reports whether this state shows a placeholder instead of
// real content.
func (s LoadingState) Placeholder() bool {
	switch s.Phase {
	case PhaseInitial, PhaseLoading, PhaseNoContent, PhaseError:
		return true
	default:
		return false
	}
}

// aggregateLoadingState reduces several states to one. Precedence, highest
// first: Loading, Refreshing, Error (first cause wins), NoContent, Loaded,
// Initial. Callers pass children in registration order with the container's
// own state last, so the first error cause belongs to the earliest child.
func aggregateLoadingState(states []LoadingState) LoadingState {
	var (
		anyRefreshing bool
		anyError      bool
		firstErr      error
		anyNoContent  bool
		anyLoaded     bool
	)
	for _, s := range states {
		switch s.Phase {
		case PhaseLoading:
			return LoadingState{Phase: PhaseLoading}
		case PhaseRefreshing:
			anyRefreshing = true
		case PhaseError:
			if !anyError {
				anyError = true
				firstErr = s.Err
			}
		case PhaseNoContent:
			anyNoContent = true
		case PhaseLoaded:
			anyLoaded = true
		}
	}
	switch {
	case anyRefreshing:
		return LoadingState{Phase: PhaseRefreshing}
	case anyError:
		return LoadingState{Phase: PhaseError, Err: firstErr}
	case anyNoContent:
		return LoadingState{Phase: PhaseNoContent}
	case anyLoaded:
		return LoadingState{Phase: PhaseLoaded}
	default:
		return LoadingState{Phase: PhaseInitial}
	}
}
