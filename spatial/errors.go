// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import "errors"

// Kind classifies the failures the spatial package can report.
type Kind int

const (
	// KindUnknown is the zero value; it is never produced by this package.
	KindUnknown Kind = iota
	// KindParse means no coordinate grammar matched the input text.
	KindParse
	// KindUnsupportedFormat means an output notation outside the enumeration.
	KindUnsupportedFormat
	// KindUnsupportedUnit means a distance or area unit outside the enumeration.
	KindUnsupportedUnit
	// KindCollinear means three points on a straight line where a proper
	// triangle is required.
	KindCollinear
	// KindEmptyInput means an aggregate operation received no points.
	KindEmptyInput
)

// Error is the error type returned by every fallible operation in this
// package. Callers that only want a message can treat it as a plain error;
// callers that branch on the failure use the Is* predicates.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func isKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}

// IsParseError reports whether err is a coordinate parse failure.
func IsParseError(err error) bool { return isKind(err, KindParse) }

// IsUnsupportedFormat reports whether err names an unknown output notation.
func IsUnsupportedFormat(err error) bool { return isKind(err, KindUnsupportedFormat) }

// IsUnsupportedUnit reports whether err names an unknown unit.
func IsUnsupportedUnit(err error) bool { return isKind(err, KindUnsupportedUnit) }

// IsCollinear reports whether err is a degenerate-triangle failure.
func IsCollinear(err error) bool { return isKind(err, KindCollinear) }

// IsEmptyInput reports whether err is an empty point sequence failure.
func IsEmptyInput(err error) bool { return isKind(err, KindEmptyInput) }
