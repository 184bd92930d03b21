package devicedb

import "github.com/fpgakit/go-latticebit/latticebit"

// Lattice returns the builtin table of Lattice devices. iCE40 parts are
// absent: they carry no JTAG IDCODE and their bitstreams are never
// encrypted, so nothing ever resolves against them.
func Lattice() *Table {
	return New(latticeParts...)
}

var latticeParts = []latticebit.Device{
	// MachXO2
	{IDCode: 0x012B0043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-256"},
	{IDCode: 0x012B1043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-640"},
	{IDCode: 0x012B2043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-1200"},
	{IDCode: 0x012B3043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-2000"},
	{IDCode: 0x012B4043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-4000"},
	{IDCode: 0x012B5043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO2-7000"},

	// MachXO3
	{IDCode: 0x612B2043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3LF-1300"},
	{IDCode: 0x612B3043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3LF-2100"},
	{IDCode: 0x612B4043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3LF-4300"},
	{IDCode: 0x612B5043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3LF-6900"},
	{IDCode: 0x612B6043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3LF-9400"},
	{IDCode: 0x012E2043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3D-4300"},
	{IDCode: 0x212E3043, Manufacturer: latticebit.ManufacturerLattice, Model: "LCMXO3D-9400"},

	// ECP5
	{IDCode: 0x21111043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5U-12"},
	{IDCode: 0x41111043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5U-25"},
	{IDCode: 0x41112043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5U-45"},
	{IDCode: 0x41113043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5U-85"},
	{IDCode: 0x01111043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM-25"},
	{IDCode: 0x01112043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM-45"},
	{IDCode: 0x01113043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM-85"},
	{IDCode: 0x81111043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM5G-25"},
	{IDCode: 0x81112043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM5G-45"},
	{IDCode: 0x81113043, Manufacturer: latticebit.ManufacturerLattice, Model: "LFE5UM5G-85"},

	// CrossLink-NX
	{IDCode: 0x010F0043, Manufacturer: latticebit.ManufacturerLattice, Model: "LIFCL-17"},
	{IDCode: 0x010F1043, Manufacturer: latticebit.ManufacturerLattice, Model: "LIFCL-40"},
}
