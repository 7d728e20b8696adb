// Package orchestrator wires the loader → parser → reference builder →
// renderer pipeline behind a single entry point that accepts injected
// dependencies.
package orchestrator
