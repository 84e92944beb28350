// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the sentinel all *ShapeMismatch values satisfy via
// errors.Is, for callers that only care whether validation failed and
// not the details.
var ErrShapeMismatch = errors.New("straxis: shape mismatch")

// ShapeMismatch is the one error kind straxis raises: any dimension
// mismatch, malformed permutation, or contracted-extent disagreement
// detected before a kernel call writes anything.
type ShapeMismatch struct {
	Op      string // "add", "trace", or "contract"
	Reason  string // short machine-stable description
	Details string // offending sizes, formatted for a human reader
}

func (e *ShapeMismatch) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("straxis: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("straxis: %s: %s: %s", e.Op, e.Reason, e.Details)
}

// Is reports whether target is ErrShapeMismatch, so callers can write
// errors.Is(err, straxis.ErrShapeMismatch) without depending on the
// concrete *ShapeMismatch type.
func (e *ShapeMismatch) Is(target error) bool {
	return target == ErrShapeMismatch
}

func shapeMismatch(op, reason string, details ...any) *ShapeMismatch {
	return &ShapeMismatch{Op: op, Reason: reason, Details: fmt.Sprint(details...)}
}
