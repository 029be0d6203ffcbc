package logger

// Reporter is an error-reporting sink backed by a Logger. It satisfies the
// fetcher.ErrorReporter interface: every reported failure becomes one
// error-level log entry with the cause attached.
type Reporter struct {
	log *Logger
}

// NewReporter creates a reporting sink writing through log.
// A nil log falls back to the global logger.
func NewReporter(log *Logger) *Reporter {
	if log == nil {
		log = GetGlobalLogger()
	}
	return &Reporter{log: log.WithComponent("fetcher")}
}

// ReportError logs the failure.
func (r *Reporter) ReportError(message string, err error) {
	r.log.WithError(err).Error(message)
}
