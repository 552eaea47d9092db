// Package commands defines the promptcalc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - calc            Evaluate an expression via the remote model
//   - apikey set      Validate and store the API key (encrypted at rest)
//   - apikey status   Report whether a key is configured
//   - apikey delete   Remove the stored key
//   - history         List past calculations
//   - history clear   Delete the calculation history
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (key store, credential store, history database, Gemini client) before any
// subcommand runs, so handlers share one app context. When calc finds no
// usable credential it prompts for one, validates it upstream, saves it and
// retries the calculation once.
package commands
