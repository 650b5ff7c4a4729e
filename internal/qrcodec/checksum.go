package qrcodec

import (
	"fmt"
	"strings"

	"emvstash/internal/crc16"
)

// serializeForChecksum rebuilds the canonical TLV string with the checksum
// record contributing nothing at its position. The CRC is computed over this
// plus the checksum tag's own id and length.
func serializeForChecksum(tree []Record) string {
	var b strings.Builder
	for _, r := range tree {
		if r.ID == ChecksumID {
			continue
		}
		b.WriteString(r.ID)
		b.WriteString(r.Length)
		b.WriteString(r.Value)
	}
	return b.String()
}

// Validate checks the stored checksum against a freshly computed one.
// It is a separate step from Decode so a caller may parse-then-repair
// with Recompute instead of rejecting a tampered payload outright.
func Validate(tree []Record) error {
	var cs *Record
	for i := range tree {
		if tree[i].ID == ChecksumID {
			cs = &tree[i]
			break
		}
	}
	if cs == nil {
		return ErrChecksumFieldMissing
	}
	want := crc16.Hex([]byte(serializeForChecksum(tree) + ChecksumID + cs.Length))
	if want != strings.ToUpper(cs.Value) {
		return fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, cs.Value, want)
	}
	return nil
}

// Recompute returns a deep copy with the checksum record refreshed: value set
// to the CRC of the canonical serialization and length fixed at 04. Without a
// checksum record the tree is returned as-is; the CRC is opportunistic.
func Recompute(tree []Record) []Record {
	found := false
	for i := range tree {
		if tree[i].ID == ChecksumID {
			found = true
			break
		}
	}
	if !found {
		return tree
	}

	out := cloneTree(tree)
	for i := range out {
		if out[i].ID == ChecksumID {
			out[i].Value = crc16.Hex([]byte(serializeForChecksum(out) + ChecksumID + "04"))
			out[i].Length = "04"
			break
		}
	}
	return out
}
