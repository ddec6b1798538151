package domain

import "strings"

// CURIE is a namespaced ontology identifier such as "MONDO:0007254".
type CURIE string

// Namespace returns the prefix before the first colon, or "" when the
// identifier carries no namespace.
func (c CURIE) Namespace() string {
	if i := strings.Index(string(c), ":"); i >= 0 {
		return string(c)[:i]
	}
	return ""
}

// InNamespace reports whether the identifier carries the given namespace prefix.
func (c CURIE) InNamespace(ns string) bool {
	return ns != "" && c.Namespace() == ns
}

// Reference returns the local part after the first colon.
func (c CURIE) Reference() string {
	if i := strings.Index(string(c), ":"); i >= 0 {
		return string(c)[i+1:]
	}
	return string(c)
}

func (c CURIE) String() string {
	return string(c)
}
