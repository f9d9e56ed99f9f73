// Package xmltree parses XML into a generic tree and provides the lookup
// primitives the report parser needs to cope with schema-version drift:
// dotted-path resolution with defaults, first-match field aliasing and
// array-or-single cardinality normalization.
package xmltree

import (
	"fmt"
	"strings"

	"github.com/clbanning/mxj/v2"
)

func init() {
	// Merge element attributes into the owning element as plain fields,
	// matching how the bureau exports are read everywhere else.
	mxj.SetAttrPrefix("")
}

// Node is one element of the parsed tree. Child values are strings for text
// elements, Node-shaped maps for nested elements, or []interface{} when the
// same tag repeats.
type Node map[string]interface{}

// Parse parses an XML document into a tree. Tag names are preserved
// verbatim and single children are not wrapped in one-element lists.
func Parse(data []byte) (Node, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return Node(m), nil
}

// AsNode converts a raw child value into a Node, or nil when the value is
// absent or not element-shaped.
func AsNode(v interface{}) Node {
	switch m := v.(type) {
	case Node:
		return m
	case map[string]interface{}:
		return Node(m)
	default:
		return nil
	}
}

// AsSlice normalizes the array-or-single-object ambiguity of repeated XML
// elements: absent input yields nil, a single element yields a one-element
// slice, a repeated element yields one entry per occurrence.
func AsSlice(v interface{}) []Node {
	if v == nil {
		return nil
	}
	if list, ok := v.([]interface{}); ok {
		nodes := make([]Node, 0, len(list))
		for _, item := range list {
			if n := AsNode(item); n != nil {
				nodes = append(nodes, n)
			}
		}
		return nodes
	}
	if n := AsNode(v); n != nil {
		return []Node{n}
	}
	return nil
}

// AsScalars normalizes a value that may be a single text element or a
// repeated one into a slice of raw scalar values.
func AsScalars(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if list, ok := v.([]interface{}); ok {
		scalars := make([]interface{}, 0, len(list))
		for _, item := range list {
			scalars = append(scalars, unwrapText(item))
		}
		return scalars
	}
	return []interface{}{unwrapText(v)}
}

// Lookup traverses dot-separated keys and returns the value found, or def
// the moment any intermediate segment is absent.
func (n Node) Lookup(path string, def interface{}) interface{} {
	current := n
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		v, ok := current[segment]
		if !ok || v == nil {
			return def
		}
		if i == len(segments)-1 {
			return unwrapText(v)
		}
		current = AsNode(v)
		if current == nil {
			return def
		}
	}
	return def
}

// Section returns the first candidate path that resolves to an element,
// or an empty Node so field reads on a missing section degrade to defaults
// instead of erroring.
func (n Node) Section(paths ...string) Node {
	for _, path := range paths {
		if section := AsNode(n.Lookup(path, nil)); section != nil {
			return section
		}
	}
	return Node{}
}

// First returns the value of the first present key. Alternate key spellings
// for the same semantic field are tried in preference order, which is how
// the differing naming conventions across bureau export versions are
// reconciled.
func (n Node) First(keys ...string) interface{} {
	for _, key := range keys {
		if v, ok := n[key]; ok && v != nil {
			if s, isStr := unwrapText(v).(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
			return unwrapText(v)
		}
	}
	return nil
}

// unwrapText collapses an element that carried attributes down to its text
// content, so scalar reads see the text rather than the wrapping map.
func unwrapText(v interface{}) interface{} {
	if m := AsNode(v); m != nil {
		if text, ok := m["#text"]; ok {
			return text
		}
	}
	return v
}
