// Package calculator is the orchestration layer between the CLI, the
// credential store and the remote model client. It owns the caller-side
// rules: operand validation happens before the network, divide-by-zero is
// rejected locally, a new key is validated upstream before it is saved, and
// history records successes only.
package calculator
