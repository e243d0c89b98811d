package generation

// Logger receives the generation narrative on four channels.
type Logger interface {
	Log(msg string)
	Warn(msg string)
	Error(msg string)
	Done(msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Log(string)   {}
func (NopLogger) Warn(string)  {}
func (NopLogger) Error(string) {}
func (NopLogger) Done(string)  {}
