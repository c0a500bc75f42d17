// Package cli parses command-line arguments and environment defaults into an
// app.Config and maps usage errors to exit codes.
package cli
