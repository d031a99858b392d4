//go:build debug

// Package assert holds invariant checks that panic in debug builds and
// compile to nothing otherwise.
package assert

import (
	"fmt"

	"github.com/sufield/pixelprops/internal/domain"
)

// Invariant panics when ok is false. Use it for internal sanity checks on
// state this module produced, never for validating host input.
//
//	assert.Invariant(set.Len() <= len(domain.AllAttributeKeys()), "directive set grew past %d keys", set.Len())
func Invariant(ok bool, format string, args ...any) {
	if !ok {
		panic("INVARIANT VIOLATION: " + fmt.Sprintf(format, args...))
	}
}

// UniqueKeys panics when directives name the same attribute twice or name an
// attribute outside the identity record.
func UniqueKeys(directives []domain.Directive) {
	seen := make(map[domain.AttributeKey]bool, len(directives))
	for _, d := range directives {
		Invariant(d.Key.Valid(), "directive %s has an unknown key", d)
		Invariant(!seen[d.Key], "attribute %s queued twice", d.Key)
		seen[d.Key] = true
	}
}
