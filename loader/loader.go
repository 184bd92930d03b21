// Package loader provides the file-reading front end for bitstream parsing:
// it loads whole .bit files into memory, runs the parser, and reports
// failures through pluggable logging and error-reporting hooks.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/fpgakit/go-latticebit/latticebit"
)

// Loader reads bitstream files into memory and parses them.
//
// Loader is safe for concurrent use after initialization.
type Loader struct {
	config Config
}

// New creates a new Loader with the given options.
//
// Example:
//
//	ldr := loader.New(
//	    loader.WithLogger(myLogger),
//	    loader.WithDeviceTable(devicedb.Lattice()),
//	)
//	bs, err := ldr.Load("design.bit")
func New(opts ...Option) *Loader {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{config: cfg}
}

// Load reads and parses a .bit file from disk.
func (l *Loader) Load(path string) (*latticebit.Bitstream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.reportError(fmt.Sprintf("cannot read %s: %v", path, err))
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	l.logDebug("loaded file", "path", path, "size", len(data))
	return l.parse(data)
}

// LoadReader reads and parses a .bit file from any io.Reader.
func (l *Loader) LoadReader(r io.Reader) (*latticebit.Bitstream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		l.reportError(fmt.Sprintf("cannot read input: %v", err))
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return l.parse(data)
}

// LoadBytes parses a .bit file already held in memory.
func (l *Loader) LoadBytes(data []byte) (*latticebit.Bitstream, error) {
	return l.parse(data)
}

func (l *Loader) parse(data []byte) (*latticebit.Bitstream, error) {
	bs, err := latticebit.ParseBytes(data, l.config.DeviceTable)
	if err != nil {
		l.reportError(err.Error())
		return nil, err
	}

	l.logDebug("parsed bitstream",
		"variant", bs.Variant.String(),
		"bit_length", bs.BitLength,
		"header_fields", len(bs.Header),
	)
	if id, ok := bs.IDCode(); ok {
		l.logDebug("resolved idcode", "idcode", fmt.Sprintf("0x%08X", id))
	}

	return bs, nil
}

func (l *Loader) reportError(msg string) {
	if l.config.ErrorReporter != nil {
		l.config.ErrorReporter(msg)
	}
	if l.config.Logger != nil {
		l.config.Logger.Error(msg)
	}
}

func (l *Loader) logDebug(msg string, keysAndValues ...interface{}) {
	if l.config.Logger != nil {
		l.config.Logger.Debug(msg, keysAndValues...)
	}
}
