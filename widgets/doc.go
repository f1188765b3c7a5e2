// Package widgets contains dumb render primitives for the browser UI.
//
// Allowed here:
// - stateless drawing helpers (section chrome, rows, placeholder, badges)
//
// Not allowed here:
// - key handling, data-source state, or index translation logic
package widgets
