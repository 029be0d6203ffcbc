// Package logger provides structured logging for fetchkit using zerolog,
// plus the zerolog-backed ErrorReporter used by the fetcher package.
//
// It supports JSON and console output formats, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("my-service")
//	log.Info("starting", logger.Fields("base_url", baseURL))
//
//	f, err := fetcher.NewWithBase(baseURL, logger.NewReporter(log))
package logger
