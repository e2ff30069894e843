// Package logger provides leveled, component-gated logging for the signature
// helper. Each subsystem logs through a ComponentLogger so noisy extraction
// diagnostics can be enabled independently of the rest of the process.
package logger
