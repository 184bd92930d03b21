// Package devicedb provides the device description tables the parser
// consults to resolve IDCODEs for encrypted bitstreams.
package devicedb

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/fpgakit/go-latticebit/latticebit"
)

// Table is an ordered collection of device records. Order is significant:
// when several models prefix the same part name the last matching entry
// wins, so broader model names should come first.
type Table struct {
	devices []latticebit.Device
}

// New builds a table from the given records, preserving their order.
// The records are copied; later changes to the input slice do not affect
// the table.
func New(devices ...latticebit.Device) *Table {
	t := &Table{devices: make([]latticebit.Device, len(devices))}
	copy(t.devices, devices)
	return t
}

// Lookup returns the records of one manufacturer in table order.
func (t *Table) Lookup(manufacturer string) []latticebit.Device {
	var out []latticebit.Device
	for _, d := range t.devices {
		if d.Manufacturer == manufacturer {
			out = append(out, d)
		}
	}
	return out
}

// ByIDCode returns the record with the given IDCODE.
func (t *Table) ByIDCode(id uint32) (latticebit.Device, bool) {
	for _, d := range t.devices {
		if d.IDCode == id {
			return d, true
		}
	}
	return latticebit.Device{}, false
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.devices)
}

// Validate checks every record and reports all problems at once rather than
// stopping at the first one. Returns nil if the table is well formed.
func (t *Table) Validate() error {
	var result *multierror.Error
	seen := make(map[uint32]string, len(t.devices))

	for i, d := range t.devices {
		if d.IDCode == 0 {
			result = multierror.Append(result,
				fmt.Errorf("entry %d (%s): zero idcode", i, d.Model))
		}
		if d.Manufacturer == "" {
			result = multierror.Append(result,
				fmt.Errorf("entry %d (%s): empty manufacturer", i, d.Model))
		}
		if d.Model == "" {
			result = multierror.Append(result,
				fmt.Errorf("entry %d: empty model", i))
		}
		if prev, dup := seen[d.IDCode]; dup && d.IDCode != 0 {
			result = multierror.Append(result,
				fmt.Errorf("entry %d (%s): idcode 0x%08X already used by %s",
					i, d.Model, d.IDCode, prev))
		}
		seen[d.IDCode] = d.Model
	}

	return result.ErrorOrNil()
}
