package qrcodec

import (
	"fmt"
	"sort"
	"strings"

	"emvstash/internal/schema"
)

// The mutators are pure: each returns a new tree and leaves the input
// untouched, rebuilding value and length bottom-up along the edited path
// only. Paths are id sequences from root to target; the first id match wins
// at each level. Callers recompute the checksum after every mutation.

// SetValue replaces the value of the leaf record at path and refreshes the
// lengths of every ancestor. A path that does not resolve to an existing
// leaf is a silent no-op: UI callers may race with structural edits.
func SetValue(tree []Record, path []string, value string) []Record {
	out, _ := setValue(tree, path, value)
	return out
}

func setValue(tree []Record, path []string, value string) ([]Record, bool) {
	if len(path) == 0 {
		return tree, false
	}
	for i := range tree {
		if tree[i].ID != path[0] {
			continue
		}
		if len(path) == 1 {
			// templates derive their value from children; only leaves are set
			if tree[i].Children != nil || tree[i].Value == value {
				return tree, false
			}
			cp := cloneTree(tree)
			cp[i].Value = value
			cp[i].Length = pad2(len(value))
			return cp, true
		}
		if tree[i].Children == nil {
			return tree, false
		}
		children, changed := setValue(tree[i].Children, path[1:], value)
		if !changed {
			return tree, false
		}
		cp := cloneTree(tree)
		cp[i].Children = children
		reflow(&cp[i])
		return cp, true
	}
	return tree, false
}

// InsertField adds an empty record for id under parentPath (the root level
// when empty), constructed from its schema node. The receiving level is
// re-sorted by numeric id.
func InsertField(tree []Record, parentPath []string, id string, node *schema.Node) ([]Record, error) {
	if node == nil {
		return tree, fmt.Errorf("%w: %s", ErrSchemaNotFound, id)
	}

	rec := Record{
		ID:          id,
		Length:      "00",
		Name:        node.Name,
		Description: node.Description,
		Format:      node.Format,
	}
	if node.SubFields != nil {
		rec.Children = []Record{}
	}

	if len(parentPath) == 0 {
		cp := cloneTree(tree)
		cp = append(cp, rec)
		sortLevel(cp)
		return cp, nil
	}
	return insertUnder(tree, parentPath, rec)
}

func insertUnder(tree []Record, parentPath []string, rec Record) ([]Record, error) {
	for i := range tree {
		if tree[i].ID != parentPath[0] {
			continue
		}
		if tree[i].Children == nil {
			return tree, fmt.Errorf("%w: %s", ErrParentNotStructured, tree[i].ID)
		}
		var (
			children []Record
			err      error
		)
		if len(parentPath) == 1 {
			children = append(cloneTree(tree[i].Children), rec)
			sortLevel(children)
		} else {
			children, err = insertUnder(tree[i].Children, parentPath[1:], rec)
			if err != nil {
				return tree, err
			}
		}
		cp := cloneTree(tree)
		cp[i].Children = children
		reflow(&cp[i])
		return cp, nil
	}
	return tree, fmt.Errorf("%w: %s", ErrParentNotStructured, strings.Join(parentPath, "/"))
}

// DeleteField removes the record at path and refreshes ancestor lengths.
// An unresolved path is a silent no-op, mirroring SetValue.
func DeleteField(tree []Record, path []string) []Record {
	out, _ := deleteField(tree, path)
	return out
}

func deleteField(tree []Record, path []string) ([]Record, bool) {
	if len(path) == 0 {
		return tree, false
	}
	for i := range tree {
		if tree[i].ID != path[0] {
			continue
		}
		if len(path) == 1 {
			cp := make([]Record, 0, len(tree)-1)
			cp = append(cp, cloneTree(tree[:i])...)
			cp = append(cp, cloneTree(tree[i+1:])...)
			return cp, true
		}
		if tree[i].Children == nil {
			return tree, false
		}
		children, changed := deleteField(tree[i].Children, path[1:])
		if !changed {
			return tree, false
		}
		cp := cloneTree(tree)
		cp[i].Children = children
		reflow(&cp[i])
		return cp, true
	}
	return tree, false
}

// reflow re-derives a template's value and length from its children.
func reflow(r *Record) {
	r.Value = Encode(r.Children)
	r.Length = pad2(len(r.Value))
}

func sortLevel(level []Record) {
	sort.SliceStable(level, func(i, j int) bool {
		a, _ := parseLength(level[i].ID)
		b, _ := parseLength(level[j].ID)
		return a < b
	})
}
