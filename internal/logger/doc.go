// Package logger provides structured logging on top of the Zap library.
// It manages a process-wide logger with an adjustable level and exposes
// context-aware logging functions with printf-style and key-value variants.
package logger
