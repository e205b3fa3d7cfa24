/*
Copyright 2026 Nereid Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package url

import "fmt"

// ErrorKind classifies the ways in which parsing a URL string can fail.
// Both the error-returning (Parse) and panicking (MustParse) entry points
// report the same kind for the same input.
type ErrorKind int

const (
	// KindMalformedURL indicates that the input does not match the
	// top-level scheme/authority/path grammar at all: an empty string, an
	// embedded control character, a leading ':' with no scheme, or an
	// unterminated '[' IP literal.
	KindMalformedURL ErrorKind = iota
	// KindInvalidPort indicates that an authority's port subpart is empty,
	// non-numeric, or outside the range [0, 65535].
	KindInvalidPort
	// KindInvalidEscape indicates that a '%' in the path is not followed by
	// exactly two hexadecimal digits.
	KindInvalidEscape
)

// String returns a short human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMalformedURL:
		return "malformed URL"
	case KindInvalidPort:
		return "invalid port"
	case KindInvalidEscape:
		return "invalid escape"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the error type returned by parsing functions in this package.
// It carries the failure classification, a descriptive message, and the byte
// offset of the failure in the input when it could be determined.
type ParseError struct {
	Kind    ErrorKind
	Message string
	// Offset is the byte offset of the failure in the input string, or -1
	// when no single position is responsible.
	Offset int
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("URL parse error: %s: %s at offset %d", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("URL parse error: %s: %s", e.Kind, e.Message)
}

// newParseError creates a ParseError of the given kind. The offset may be -1
// when the failing position is not determinable.
func newParseError(kind ErrorKind, offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}
