package qrcodec

import (
	"fmt"
	"strings"
)

// ChecksumID is the reserved top-level tag carrying the payload CRC.
const ChecksumID = "63"

// Record is one decoded tag-length-value triplet.
//
// Length is kept exactly as it appears on the wire: the character count of
// Value as a zero-padded two-digit decimal. For a template tag Value is the
// byte-for-byte concatenation of the children's encoding; the mutators keep
// the two in lock-step so Encode stays a pure flatten.
type Record struct {
	ID     string
	Length string
	Value  string

	// Children is non-nil only for template tags. An empty non-nil slice
	// marks a template with no fields yet.
	Children []Record

	// Display metadata copied from the schema registry at decode time.
	// The registry stays authoritative.
	Name        string
	Description string
	Format      string
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %q", r.ID, r.Length, r.Value)
}

// Encode flattens a record tree into the canonical TLV string.
func Encode(tree []Record) string {
	var b strings.Builder
	for _, r := range tree {
		b.WriteString(r.ID)
		b.WriteString(r.Length)
		b.WriteString(r.Value)
	}
	return b.String()
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func cloneRecord(r Record) Record {
	cp := r
	cp.Children = cloneTree(r.Children)
	return cp
}

func cloneTree(tree []Record) []Record {
	if tree == nil {
		return nil
	}
	out := make([]Record, len(tree))
	for i := range tree {
		out[i] = cloneRecord(tree[i])
	}
	return out
}
