package loader

import (
	"github.com/fpgakit/go-latticebit/devicedb"
	"github.com/fpgakit/go-latticebit/latticebit"
)

// Config holds the loader configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// ErrorReporter is called with a message for every failed load (optional)
	ErrorReporter ErrorReporter

	// DeviceTable resolves IDCODEs for encrypted bitstreams.
	// Defaults to the builtin Lattice table.
	DeviceTable latticebit.DeviceTable
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		DeviceTable: devicedb.Lattice(),
	}
}

// Option is a functional option for configuring the Loader.
type Option func(*Config)

// WithLogger sets a logger for load and parse operations.
//
// Example:
//
//	ldr := loader.New(loader.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithErrorReporter sets a callback invoked with a message for every failed
// load, before the error is returned.
//
// Example:
//
//	ldr := loader.New(loader.WithErrorReporter(func(msg string) {
//	    fmt.Fprintln(os.Stderr, msg)
//	}))
func WithErrorReporter(reporter ErrorReporter) Option {
	return func(c *Config) {
		c.ErrorReporter = reporter
	}
}

// WithDeviceTable replaces the builtin Lattice device table. A nil table
// disables IDCODE resolution for encrypted bitstreams.
//
// Example:
//
//	table := devicedb.New(myDevices...)
//	ldr := loader.New(loader.WithDeviceTable(table))
func WithDeviceTable(table latticebit.DeviceTable) Option {
	return func(c *Config) {
		c.DeviceTable = table
	}
}
