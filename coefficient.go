// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import "github.com/straxis-go/straxis/internal/kernel"

// Tag distinguishes the three coefficient states, fixed by the caller's
// declared intent rather than by comparing a general value to 0 or 1 at
// runtime.
type Tag = kernel.Tag

// The three coefficient tags.
const (
	TagZero    = kernel.TagZero
	TagOne     = kernel.TagOne
	TagGeneral = kernel.TagGeneral
)

// Coefficient is the alpha/beta tag from the data model: Zero, One, or a
// general scalar value, carried alongside the tag that selects it.
type Coefficient[T Number] struct {
	Tag   Tag
	Value T
}

// Zero returns the Zero coefficient.
func Zero[T Number]() Coefficient[T] {
	return Coefficient[T]{Tag: TagZero}
}

// One returns the One coefficient.
func One[T Number]() Coefficient[T] {
	return Coefficient[T]{Tag: TagOne, Value: T(1)}
}

// Val returns a general coefficient holding v. v may happen to equal 0
// or 1; the dispatcher still routes it through the general path, since
// the tag, not the value, is what the caller declared.
func Val[T Number](v T) Coefficient[T] {
	return Coefficient[T]{Tag: TagGeneral, Value: v}
}
