package logger

// MultiLogger fans every message out to multiple loggers, typically a
// ConsoleLogger plus a FileLogger for the same run. Nil sinks are skipped.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger creates a MultiLogger over the given sinks.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	filtered := make([]Logger, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	return &MultiLogger{sinks: filtered}
}

// LogTrace forwards a trace-level message to all sinks.
func (ml *MultiLogger) LogTrace(message string) {
	for _, s := range ml.sinks {
		s.LogTrace(message)
	}
}

// LogDebug forwards a debug-level message to all sinks.
func (ml *MultiLogger) LogDebug(message string) {
	for _, s := range ml.sinks {
		s.LogDebug(message)
	}
}

// LogInfo forwards an info-level message to all sinks.
func (ml *MultiLogger) LogInfo(message string) {
	for _, s := range ml.sinks {
		s.LogInfo(message)
	}
}

// LogWarn forwards a warning-level message to all sinks.
func (ml *MultiLogger) LogWarn(message string) {
	for _, s := range ml.sinks {
		s.LogWarn(message)
	}
}

// LogError forwards an error-level message to all sinks.
func (ml *MultiLogger) LogError(message string) {
	for _, s := range ml.sinks {
		s.LogError(message)
	}
}

// Nop is a Logger that discards everything. Useful in tests.
type Nop struct{}

func (Nop) LogTrace(string) {}
func (Nop) LogDebug(string) {}
func (Nop) LogInfo(string)  {}
func (Nop) LogWarn(string)  {}
func (Nop) LogError(string) {}
