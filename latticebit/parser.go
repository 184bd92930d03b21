package latticebit

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants of the Lattice .bit container format.
const (
	// Signature is the packaging signature Radiant-produced files start with
	Signature = "LSCC"

	// CommentLead and CommentTail are the two bytes opening the comment area
	CommentLead = 0xFF
	CommentTail = 0x00

	// PreambleKey is the byte anchoring the preamble search
	PreambleKey = 0xB3

	// PlainKey precedes PreambleKey in unencrypted bitstreams
	PlainKey = 0xBD

	// EncryptedKey precedes PreambleKey in encrypted bitstreams
	EncryptedKey = 0xBF

	// PreamblePlain is the little-endian preamble word of an unencrypted
	// payload
	PreamblePlain = 0xB3BDFFFF

	// PreambleEncrypted is the little-endian preamble word of an encrypted
	// payload
	PreambleEncrypted = 0xB3BFFFFF

	// VerifyID is the configuration command whose operand carries the
	// embedded IDCODE
	VerifyID = 0xE2

	// ManufacturerLattice is the manufacturer name used for device table
	// lookups
	ManufacturerLattice = "lattice"
)

// idcodeField is the header key the resolved IDCODE is stored under.
const idcodeField = "idcode"

// Parse parses a .bit file from the given file path. The table resolves
// IDCODEs for encrypted bitstreams and may be nil, in which case encrypted
// files parse without an idcode field.
//
// Example:
//
//	bs, err := latticebit.Parse("design.bit", devicedb.Lattice())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Part: %s\n", bs.HeaderVal("Part"))
func Parse(path string, table DeviceTable) (*Bitstream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data, table)
}

// ParseReader parses a .bit file from any io.Reader. The whole input is
// buffered in memory first; .bit files are at most a few megabytes.
func ParseReader(r io.Reader, table DeviceTable) (*Bitstream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseBytes(data, table)
}

// ParseBytes parses a .bit file from an in-memory buffer. The buffer is not
// modified and not retained; the returned payload is a copy.
func ParseBytes(data []byte, table DeviceTable) (*Bitstream, error) {
	headerStart, headerEnd, err := locateHeader(data)
	if err != nil {
		return nil, err
	}

	variant, err := checkPreamble(data, headerEnd)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, len(data)-headerEnd)
	copy(payload, data[headerEnd:])

	bs := &Bitstream{
		Header:    parseHeaderFields(data, headerStart, headerEnd),
		Variant:   variant,
		Payload:   payload,
		BitLength: len(payload) * 8,
	}

	switch variant {
	case VariantPlain:
		if id, ok := scanIDCode(payload); ok {
			bs.Header[idcodeField] = FormatIDCode(id)
		}
	case VariantEncrypted:
		if id, ok := lookupIDCode(bs.Header["Part"], table); ok {
			bs.Header[idcodeField] = FormatIDCode(id)
		}
	}

	return bs, nil
}

// locateHeader finds the end of the optional signature plus comment marker
// (headerStart) and the boundary between text header and binary payload
// (headerEnd). The four bytes at headerEnd+1 hold the preamble word that
// checkPreamble validates.
func locateHeader(data []byte) (headerStart, headerEnd int, err error) {
	pos := 0

	// Radiant .bit files start with "LSCC"; legacy Diamond files do not.
	if len(data) > 0 && data[0] == Signature[0] {
		if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
			return 0, 0, &FormatError{
				Kind:   SignatureMismatch,
				Offset: 0,
				Detail: fmt.Sprintf("%q", clip(data, len(Signature))),
			}
		}
		pos += len(Signature)
	}

	// The comment area starts with 0xFF 0x00.
	if len(data) < pos+2 || data[pos] != CommentLead || data[pos+1] != CommentTail {
		detail := ""
		if len(data) >= pos+2 {
			detail = fmt.Sprintf("0x%02X%02X", data[pos], data[pos+1])
		}
		return 0, 0, &FormatError{Kind: MarkerMissing, Offset: pos, Detail: detail}
	}
	pos += 2

	// The text header runs until the first 0xFF fill byte.
	fill := bytes.IndexByte(data[pos:], 0xFF)
	if fill < 0 {
		return 0, 0, &FormatError{Kind: PreambleNotFound, Offset: pos}
	}
	fill += pos

	// MachXO3D files pad extra 0xFF bytes before the preamble key, so the
	// key byte is searched separately from the fill run.
	key := bytes.IndexByte(data[fill:], PreambleKey)
	if key < 0 {
		return 0, 0, &FormatError{Kind: PreambleKeyNotFound, Offset: fill}
	}
	key += fill

	// Early diagnostic; the full word is validated by checkPreamble.
	if data[key-1] != PlainKey && data[key-1] != EncryptedKey {
		return 0, 0, &FormatError{
			Kind:   InvalidPreambleKey,
			Offset: key - 1,
			Detail: fmt.Sprintf("0x%02X", data[key-1]),
		}
	}

	return pos, key - 4, nil
}

// parseHeaderFields tokenizes the NUL-separated "key: value" records between
// start and end. Records without a colon are skipped; duplicate keys keep
// the last occurrence.
func parseHeaderFields(data []byte, start, end int) map[string]string {
	hdr := make(map[string]string)
	if end < start {
		return hdr
	}
	for _, rec := range bytes.Split(data[start:end], []byte{0x00}) {
		field := string(rec)
		colon := strings.IndexByte(field, ':')
		if colon < 0 {
			continue
		}
		hdr[field[:colon]] = strings.Trim(field[colon+1:], " ")
	}
	return hdr
}

// checkPreamble reads the little-endian preamble word at headerEnd+1 and
// classifies the payload variant.
func checkPreamble(data []byte, headerEnd int) (Variant, error) {
	word := binary.LittleEndian.Uint32(data[headerEnd+1 : headerEnd+5])
	switch word {
	case PreamblePlain:
		return VariantPlain, nil
	case PreambleEncrypted:
		return VariantEncrypted, nil
	default:
		return 0, &FormatError{
			Kind:   PreambleWordMismatch,
			Offset: headerEnd + 1,
			Detail: fmt.Sprintf("0x%08X", word),
		}
	}
}

// scanIDCode finds the first VERIFY_ID command in an unencrypted payload and
// returns the big-endian IDCODE from its operand bytes. A marker within the
// last 7 bytes has no room for its operand and is skipped.
func scanIDCode(payload []byte) (uint32, bool) {
	for i := 0; i < len(payload); i++ {
		if payload[i] != VerifyID {
			continue
		}
		if i+8 > len(payload) {
			continue
		}
		return binary.BigEndian.Uint32(payload[i+4 : i+8]), true
	}
	return 0, false
}

// lookupIDCode resolves the IDCODE of an encrypted bitstream from its "Part"
// header field. The part name is truncated at its last '-' and matched
// against the table's model names; when several models prefix the same part
// the last table entry wins.
func lookupIDCode(part string, table DeviceTable) (uint32, bool) {
	if part == "" || table == nil {
		return 0, false
	}
	subpart := part
	if i := strings.LastIndexByte(part, '-'); i >= 0 {
		subpart = part[:i]
	}

	var (
		id    uint32
		found bool
	)
	for _, dev := range table.Lookup(ManufacturerLattice) {
		if strings.HasPrefix(subpart, dev.Model) {
			id = dev.IDCode
			found = true
		}
	}
	return id, found
}

// FormatIDCode renders an IDCODE the way the header dictionary stores it:
// eight lowercase hex digits, zero padded.
func FormatIDCode(id uint32) string {
	return fmt.Sprintf("%08x", id)
}

// clip returns at most n leading bytes of data, for error messages.
func clip(data []byte, n int) []byte {
	if len(data) < n {
		return data
	}
	return data[:n]
}
