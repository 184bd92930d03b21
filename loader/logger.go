package loader

// Logger is an optional logging interface that can be provided to the
// loader. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	ldr := loader.New(loader.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// ErrorReporter receives a human-readable message whenever a load or parse
// fails, before the error is returned to the caller. Implementations should
// return quickly.
//
// Example:
//
//	ldr := loader.New(loader.WithErrorReporter(func(msg string) {
//	    fmt.Fprintln(os.Stderr, msg)
//	}))
type ErrorReporter func(msg string)
