// Package logger provides structured logging attribute helpers for log/slog.
//
// All helpers follow the empty Attr pattern: passing a nil or zero value
// returns an empty slog.Attr, which slog silently drops. This keeps call
// sites free of nil checks:
//
//	log.Info("login finished",
//		logger.Username(username),
//		logger.Error(err),       // safe when err is nil
//		logger.Elapsed(start),
//	)
package logger
