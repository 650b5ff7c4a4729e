package schema

import "fmt"

// IDRange is a key in a field table: an inclusive numeric range of two-digit
// tag ids. An exact id is a range with Lo == Hi.
type IDRange struct {
	Lo uint8
	Hi uint8
}

func (r IDRange) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%02d", r.Lo)
	}
	return fmt.Sprintf("%02d-%02d", r.Lo, r.Hi)
}

func (r IDRange) contains(id uint8) bool {
	return r.Lo <= id && id <= r.Hi
}

// Node describes one known tag: display metadata, an optional nested field
// table for template tags, and an optional value enumeration.
type Node struct {
	Name        string
	Format      string
	Description string

	// SubFields is the nested table for template tags, in declared order.
	// Nesting depth is unbounded; the national template needs three levels.
	SubFields []Entry

	// Payload maps literal field values to human labels (currencies,
	// acquirer ids, service codes and so on).
	Payload map[string]string
}

// Entry binds an id key to its node.
type Entry struct {
	Key  IDRange
	Node *Node
}

// Registry is the static tag table. Built once, read-only afterwards.
type Registry struct {
	root []Entry
}

// Lookup resolves the node for id under the given ancestor chain
// (ordered root to immediate parent, empty for top-level tags).
func (r *Registry) Lookup(id string, ancestors []string) (*Node, bool) {
	entries := r.root
	for _, anc := range ancestors {
		node, ok := resolve(entries, anc)
		if !ok || node.SubFields == nil {
			return nil, false
		}
		entries = node.SubFields
	}
	return resolve(entries, id)
}

// AllowedFieldIDs lists, in ascending order, every two-digit id that resolves
// under the given parent chain. Editors use it to offer legal additions.
func (r *Registry) AllowedFieldIDs(ancestors []string) []string {
	var ids []string
	for i := 0; i <= 99; i++ {
		id := fmt.Sprintf("%02d", i)
		if _, ok := r.Lookup(id, ancestors); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// resolve finds id in one table level: exact keys first, then range keys in
// declared order. Ranges in the table must not overlap.
func resolve(entries []Entry, id string) (*Node, bool) {
	num, ok := parseID(id)
	if !ok {
		return nil, false
	}
	for _, e := range entries {
		if e.Key.Lo == e.Key.Hi && e.Key.Lo == num {
			return e.Node, true
		}
	}
	for _, e := range entries {
		if e.Key.Lo != e.Key.Hi && e.Key.contains(num) {
			return e.Node, true
		}
	}
	return nil, false
}

func parseID(id string) (uint8, bool) {
	if len(id) != 2 || id[0] < '0' || id[0] > '9' || id[1] < '0' || id[1] > '9' {
		return 0, false
	}
	return uint8(id[0]-'0')*10 + uint8(id[1]-'0'), true
}
