// Package logger builds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// New returns a production JSON logger, or a human-readable development
// logger when debug is set.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
