package latticebit

import "strconv"

// Variant identifies which preamble form follows the text header.
type Variant int

const (
	// VariantPlain is an unencrypted payload (preamble word 0xB3BDFFFF)
	VariantPlain Variant = iota

	// VariantEncrypted is an encrypted payload (preamble word 0xB3BFFFFF)
	VariantEncrypted
)

func (v Variant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

// Bitstream represents a complete parsed .bit file.
type Bitstream struct {
	// Header contains the text header fields. If an IDCODE was resolved it
	// is stored here under the "idcode" key as eight lowercase hex digits.
	Header map[string]string

	// Variant is the payload form identified by the preamble word
	Variant Variant

	// Payload is the binary configuration data, including the preamble bytes
	Payload []byte

	// BitLength is the payload length in bits
	BitLength int
}

// HeaderVal returns the value of a header field, or "" if absent.
func (b *Bitstream) HeaderVal(key string) string {
	return b.Header[key]
}

// IDCode returns the resolved device IDCODE. The second return value is
// false when no IDCODE could be resolved during parsing.
func (b *Bitstream) IDCode() (uint32, bool) {
	s, ok := b.Header[idcodeField]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}

// Device is one record of a device table.
type Device struct {
	// IDCode is the 32-bit JTAG identification code
	IDCode uint32

	// Manufacturer is the lowercase vendor name, e.g. "lattice"
	Manufacturer string

	// Model is the device model name matched against the "Part" header field
	Model string
}

// DeviceTable is the lookup interface the parser consults to resolve the
// IDCODE of an encrypted bitstream. Implementations return the records of
// one manufacturer in a stable order; when several models prefix the same
// part name the last returned match wins.
type DeviceTable interface {
	Lookup(manufacturer string) []Device
}
