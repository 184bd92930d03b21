package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fpgakit/go-latticebit/latticebit"
)

// testLogger records log calls for inspection.
type testLogger struct {
	debug []string
	info  []string
	errs  []string
}

func (l *testLogger) Debug(msg string, kv ...interface{}) { l.debug = append(l.debug, msg) }
func (l *testLogger) Info(msg string, kv ...interface{})  { l.info = append(l.info, msg) }
func (l *testLogger) Error(msg string, kv ...interface{}) { l.errs = append(l.errs, msg) }

var (
	validBit = []byte{
		'L', 'S', 'C', 'C',
		0xFF, 0x00,
		'P', 'a', 'r', 't', ':', ' ', 'X', 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xBD, 0xB3,
		0xE2, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04,
	}
	malformedBit = []byte{0x12, 0x34, 0x56}
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.bit")
	if err := os.WriteFile(path, validBit, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	logger := &testLogger{}
	ldr := New(WithLogger(logger))

	bs, err := ldr.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := bs.HeaderVal("idcode"); got != "01020304" {
		t.Errorf("idcode = %q, want %q", got, "01020304")
	}
	if len(logger.debug) == 0 {
		t.Errorf("expected debug logging during load")
	}
	if len(logger.errs) != 0 {
		t.Errorf("unexpected error logs: %v", logger.errs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var reported []string
	ldr := New(WithErrorReporter(func(msg string) {
		reported = append(reported, msg)
	}))

	_, err := ldr.Load(filepath.Join(t.TempDir(), "missing.bit"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(reported) != 1 {
		t.Fatalf("error reporter called %d times, want 1", len(reported))
	}
	if !strings.Contains(reported[0], "missing.bit") {
		t.Errorf("report should name the file, got: %s", reported[0])
	}
}

func TestLoadBytesMalformed(t *testing.T) {
	var reported []string
	logger := &testLogger{}
	ldr := New(
		WithErrorReporter(func(msg string) { reported = append(reported, msg) }),
		WithLogger(logger),
	)

	_, err := ldr.LoadBytes(malformedBit)
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if !latticebit.IsFormatError(err) {
		t.Errorf("expected a format error, got %T: %v", err, err)
	}
	if len(reported) != 1 {
		t.Errorf("error reporter called %d times, want 1", len(reported))
	}
	if len(logger.errs) != 1 {
		t.Errorf("logger.Error called %d times, want 1", len(logger.errs))
	}
}

func TestLoadReader(t *testing.T) {
	ldr := New()

	bs, err := ldr.LoadReader(bytes.NewReader(validBit))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if bs.Variant != latticebit.VariantPlain {
		t.Errorf("variant = %v, want plain", bs.Variant)
	}
}

func TestWithDeviceTable(t *testing.T) {
	encrypted := []byte{
		0xFF, 0x00,
		'P', 'a', 'r', 't', ':', ' ', 'i', 'C', 'E', '4', '0', '-', 'U', 'P', '5', 'K', 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xBF, 0xB3,
		0x00,
	}

	table := tableFunc(func(manufacturer string) []latticebit.Device {
		if manufacturer != latticebit.ManufacturerLattice {
			return nil
		}
		return []latticebit.Device{
			{IDCode: 0x12345678, Manufacturer: manufacturer, Model: "iCE40"},
		}
	})

	ldr := New(WithDeviceTable(table))
	bs, err := ldr.LoadBytes(encrypted)
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if got := bs.HeaderVal("idcode"); got != "12345678" {
		t.Errorf("idcode = %q, want %q", got, "12345678")
	}

	// nil table disables resolution but not parsing
	ldr = New(WithDeviceTable(nil))
	bs, err = ldr.LoadBytes(encrypted)
	if err != nil {
		t.Fatalf("LoadBytes with nil table failed: %v", err)
	}
	if _, ok := bs.IDCode(); ok {
		t.Errorf("idcode should be absent with a nil table")
	}
}

// tableFunc adapts a function to the DeviceTable interface.
type tableFunc func(manufacturer string) []latticebit.Device

func (f tableFunc) Lookup(manufacturer string) []latticebit.Device {
	return f(manufacturer)
}
