package telemetry

// Logger is what the batch evaluator and the CLI report progress through. Messages are
// plain strings, callers format them before logging.
type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(msg string, err error)
}

// NOPLogger drops everything. It is the default when no logger is configured.
type NOPLogger struct {
}

func (n NOPLogger) Info(msg string) {
}
func (n NOPLogger) Debug(msg string) {
}
func (n NOPLogger) Error(msg string, err error) {
}
