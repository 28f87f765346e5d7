package rom

import (
	"encoding/binary"
	"strings"
)

// Header is the SNES internal header found at the LoROM or HiROM offset.
type Header struct {
	Title              string
	MapMode            string
	ROMSize            byte
	RAMSize            byte
	Country            byte
	License            byte
	Version            byte
	ChecksumComplement uint16
	Checksum           uint16
	Offset             int64
}

const headerSize = 32

var headerOffsets = []struct {
	mapMode string
	offset  int64
}{
	{"LoROM", 0x7FC0},
	{"HiROM", 0xFFC0},
}

// HeaderInfo probes the LoROM and HiROM header locations and returns the
// first one holding a plausible header. It reports false when neither
// location fits in the file or yields a printable title.
func (r *Reader) HeaderInfo() (Header, bool) {
	for _, loc := range headerOffsets {
		if loc.offset+headerSize > int64(len(r.data)) {
			continue
		}
		raw := r.data[loc.offset : loc.offset+headerSize]

		title := decodeTitle(raw[:21])
		if title == "" {
			continue
		}
		return Header{
			Title:              title,
			MapMode:            loc.mapMode,
			ROMSize:            raw[23],
			RAMSize:            raw[24],
			Country:            raw[25],
			License:            raw[26],
			Version:            raw[27],
			ChecksumComplement: binary.LittleEndian.Uint16(raw[28:30]),
			Checksum:           binary.LittleEndian.Uint16(raw[30:32]),
			Offset:             loc.offset,
		}, true
	}
	return Header{}, false
}

// decodeTitle keeps the printable ASCII of a 21-byte title field. Erased
// flash (all 0xFF) is not a title.
func decodeTitle(raw []byte) string {
	erased := true
	var b strings.Builder
	for _, c := range raw {
		if c != 0xFF {
			erased = false
		}
		if c >= 0x20 && c < 0x7F {
			b.WriteByte(c)
		}
	}
	if erased {
		return ""
	}
	return strings.TrimSpace(b.String())
}

// Checksum sums the ROM as 16-bit little-endian words, adding a trailing
// odd byte as-is, and truncates to 16 bits.
func (r *Reader) Checksum() uint16 {
	var sum uint16
	data := r.data
	n := len(data) &^ 1
	for i := 0; i < n; i += 2 {
		sum += binary.LittleEndian.Uint16(data[i : i+2])
	}
	if len(data)%2 == 1 {
		sum += uint16(data[len(data)-1])
	}
	return sum
}
