// Package cli defines the Cobra command trees for the learn, learnctl, and
// excalidraw-link binaries. The learn root command only records a learning and
// treats every argument as text. learnctl inspects the log, manages settings,
// and runs health checks.
// Command implementations delegate to internal packages for business logic and
// only handle flag parsing, I/O formatting, and wiring paths together.
package cli
