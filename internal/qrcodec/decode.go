package qrcodec

import (
	"fmt"

	"emvstash/internal/schema"
)

// nationalTemplateID is tag 38. Its sub-tag 01 is the one schema irregularity:
// a template nested inside a template, giving the tag family three levels.
const nationalTemplateID = "38"

// structuredSpans are the tag bands whose value is itself a TLV sequence:
// the merchant-account templates, additional data and the language template.
var structuredSpans = [...]struct{ lo, hi uint8 }{
	{26, 51},
	{62, 62},
	{64, 64},
}

func isStructured(id uint8) bool {
	for _, s := range structuredSpans {
		if s.lo <= id && id <= s.hi {
			return true
		}
	}
	return false
}

// Decode parses a flat payload string into an ordered record tree.
// Malformed input fails the whole decode; no partial tree is returned,
// since a truncated tree cannot safely be re-encoded or checksummed.
// Unknown ids are tolerated and decoded with empty metadata.
func Decode(raw string, reg *schema.Registry) ([]Record, error) {
	return decodeLevel(raw, reg, nil)
}

func decodeLevel(raw string, reg *schema.Registry, ancestors []string) ([]Record, error) {
	var out []Record

	pos := 0
	for pos < len(raw) {
		if len(raw)-pos < 4 {
			return nil, fmt.Errorf("%w: id and length expected at offset %d", ErrTruncatedInput, pos)
		}
		id := raw[pos : pos+2]
		lstr := raw[pos+2 : pos+4]
		n, ok := parseLength(lstr)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidLength, lstr, pos+2)
		}
		if len(raw)-pos-4 < n {
			return nil, fmt.Errorf("%w: tag %s declares %d, %d remain", ErrTruncatedInput, id, n, len(raw)-pos-4)
		}
		value := raw[pos+4 : pos+4+n]

		rec := Record{ID: id, Length: lstr, Value: value}
		if node, found := reg.Lookup(id, ancestors); found {
			rec.Name = node.Name
			rec.Format = node.Format
			rec.Description = describe(node, value)

			if node.SubFields != nil && descends(id, ancestors) {
				chain := make([]string, len(ancestors), len(ancestors)+1)
				copy(chain, ancestors)
				children, err := decodeLevel(value, reg, append(chain, id))
				if err != nil {
					return nil, err
				}
				if children == nil {
					children = []Record{}
				}
				rec.Children = children
			}
		}

		out = append(out, rec)
		pos += 4 + n
	}
	return out, nil
}

// describe copies the schema description and, when the node enumerates its
// values, appends a second line labelling the literal value.
func describe(node *schema.Node, value string) string {
	if node.Payload == nil {
		return node.Description
	}
	label, ok := node.Payload[value]
	if !ok {
		label = value
	}
	return node.Description + "\n" + value + ":" + label
}

// descends reports whether a tag with a nested schema is actually decoded as
// a template here. Top level: the structured bands. One level down: only the
// national template's children recurse again.
func descends(id string, ancestors []string) bool {
	if len(ancestors) == 0 {
		num, ok := parseLength(id) // ids share the two-digit decimal form
		return ok && isStructured(uint8(num))
	}
	return len(ancestors) == 1 && ancestors[0] == nationalTemplateID
}

func parseLength(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
