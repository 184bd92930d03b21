// Package latticebit provides parsing for Lattice FPGA .bit configuration files.
//
// # Bit File Format
//
// A .bit file is a container with a human-readable text header followed by a
// binary configuration payload. The regions appear in this order:
//
//	[Signature "LSCC" (optional, Radiant toolchain only)]
//	[Comment marker 0xFF 0x00]
//	[Text header: NUL-terminated "key: value" records]
//	[0xFF fill bytes]
//	[Preamble word]
//	[Configuration payload]
//
// The 4-byte preamble word, read little-endian, identifies the payload variant:
//
//	0xB3BDFFFF  plain (unencrypted) configuration data
//	0xB3BFFFFF  encrypted configuration data
//
// Example header records:
//
//	Part: LFE5U-25F-6BG256C
//	Date: 2022 05 21
//	Bits: 5681848
//
// # IDCODE Resolution
//
// Plain payloads embed the target device IDCODE as the operand of a VERIFY_ID
// (0xE2) configuration command; the parser scans for the first such command
// and stores the value in the header dictionary under "idcode", rendered as
// eight lowercase hex digits. Encrypted payloads cannot be scanned, so the
// parser instead matches the "Part" header field against a device table
// supplied by the caller (see the devicedb package for the builtin one).
// Failing to resolve an IDCODE is not an error: the field is simply absent.
//
// # Usage
//
// Parse a .bit file from disk with the builtin device table:
//
//	bs, err := latticebit.Parse("design.bit", devicedb.Lattice())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Variant: %s\n", bs.Variant)
//	fmt.Printf("Part: %s\n", bs.HeaderVal("Part"))
//	fmt.Printf("Payload: %d bits\n", bs.BitLength)
//
// Parse from an in-memory buffer:
//
//	bs, err := latticebit.ParseBytes(data, devicedb.Lattice())
//
// # Error Handling
//
// Malformed containers produce a *FormatError identifying which stage
// rejected the input and at what byte offset:
//   - Wrong "LSCC" signature
//   - Missing 0xFF 0x00 comment marker
//   - Preamble search region or key byte not found
//   - Wrong byte preceding the preamble key
//   - Preamble word matching neither variant
//
// All format errors abort the parse; no partial header or payload is
// returned.
package latticebit
