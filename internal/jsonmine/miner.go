// Package jsonmine extracts objects from arbitrarily nested JSON.
//
// The graph-query and name-resolution services return documents whose
// nesting has changed between service versions and is not documented.
// Rather than binding to a response schema, callers mine the parsed
// document for every object, at any depth, that carries a recognisable
// field. JSON values form a tree, so the traversal needs no cycle
// detection.
package jsonmine

import (
	"fmt"

	"github.com/Jeffail/gabs"
)

// Mine returns every JSON object, at any nesting depth, that contains
// the target field. The containing object is returned whole. Objects
// inside arrays are visited in array order; sibling order within an
// object is not defined.
func Mine(root *gabs.Container, field string) []*gabs.Container {
	var found []*gabs.Container
	walk(root, field, &found)
	return found
}

// MineBytes parses raw JSON and mines it for objects carrying the field.
func MineBytes(data []byte, field string) ([]*gabs.Container, error) {
	root, err := gabs.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return Mine(root, field), nil
}

func walk(c *gabs.Container, field string, found *[]*gabs.Container) {
	if c == nil {
		return
	}

	// Objects: record on field match, then descend into every value.
	if children, err := c.ChildrenMap(); err == nil {
		if _, ok := children[field]; ok {
			*found = append(*found, c)
		}
		for _, child := range children {
			walk(child, field, found)
		}
		return
	}

	// Arrays: descend into every element. Scalars end the recursion.
	if children, err := c.Children(); err == nil {
		for _, child := range children {
			walk(child, field, found)
		}
	}
}

// Str returns the string value of a field, or "" when the field is
// absent or not a string.
func Str(c *gabs.Container, field string) string {
	if c == nil {
		return ""
	}
	s, _ := c.Search(field).Data().(string)
	return s
}

// Float returns the numeric value of a field, or 0 when the field is
// absent or not a number.
func Float(c *gabs.Container, field string) float64 {
	if c == nil {
		return 0
	}
	f, _ := c.Search(field).Data().(float64)
	return f
}

// Strings returns the value of a field as a string slice, tolerating
// both []string and the []any that encoding/json produces.
func Strings(c *gabs.Container, field string) []string {
	if c == nil {
		return nil
	}
	switch v := c.Search(field).Data().(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
