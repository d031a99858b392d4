//go:build !debug

// Package assert holds invariant checks that panic in debug builds and
// compile to nothing otherwise.
package assert

import "github.com/sufield/pixelprops/internal/domain"

// Invariant is a no-op in production builds.
func Invariant(bool, string, ...any) {}

// UniqueKeys is a no-op in production builds.
func UniqueKeys([]domain.Directive) {}
