// Package app wires the loader, the expander, validation and the encoder into
// a single run, and re-runs it when the model file changes in watch mode.
package app
