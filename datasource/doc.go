// Package datasource composes independent sectioned data sources into a
// single source presenting one contiguous, renumbered section space.
//
// Allowed here:
// - local/global index mapping and translation
// - the event contract between sources and their containers
// - loading-state aggregation and the bookkeeping shared by all sources
//
// Not allowed here:
// - rendering or key handling (widgets, internal/tui)
// - content fetching or persistence (internal/sources, internal/database)
package datasource
