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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package url

import "testing"

// TestErrorKind_String tests the human-readable names of the error kinds.
func TestErrorKind_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{kind: KindMalformedURL, expected: "malformed URL"},
		{kind: KindInvalidPort, expected: "invalid port"},
		{kind: KindInvalidEscape, expected: "invalid escape"},
		{kind: ErrorKind(42), expected: "ErrorKind(42)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestParseError_Error tests the formatting of the error message with and
// without a known offset.
func TestParseError_Error(t *testing.T) {
	t.Parallel()

	withOffset := &ParseError{Kind: KindInvalidPort, Message: "non-numeric port \"80a\"", Offset: 21}
	expected := `URL parse error: invalid port: non-numeric port "80a" at offset 21`
	if got := withOffset.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}

	withoutOffset := &ParseError{Kind: KindMalformedURL, Message: "empty URL string", Offset: -1}
	expected = "URL parse error: malformed URL: empty URL string"
	if got := withoutOffset.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

// TestErrorConventionsAgree verifies that the panicking and error-returning
// entry points classify the same input identically.
func TestErrorConventionsAgree(t *testing.T) {
	t.Parallel()
	inputs := map[string]ErrorKind{
		"":                        KindMalformedURL,
		":nope":                   KindMalformedURL,
		"http://example.com:po":   KindInvalidPort,
		"http://example.com/a%gz": KindInvalidEscape,
	}

	for input, kind := range inputs {
		input, kind := input, kind
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			_, err := Parse(input)
			fromParse := assertKind(t, err, kind)

			defer func() {
				recovered := recover()
				if recovered == nil {
					t.Fatalf("MustParse(%q) did not panic", input)
				}
				pe, ok := recovered.(*ParseError)
				if !ok {
					t.Fatalf("MustParse(%q) panicked with %T, want *ParseError", input, recovered)
				}
				if pe.Kind != fromParse.Kind || pe.Message != fromParse.Message || pe.Offset != fromParse.Offset {
					t.Errorf("MustParse error %+v differs from Parse error %+v", pe, fromParse)
				}
			}()
			MustParse(input)
		})
	}
}
