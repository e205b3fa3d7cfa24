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

// TestUnescapePath verifies strict %XX decoding: valid octets decode, '+'
// and every other byte pass through, and malformed escapes are hard
// failures.
func TestUnescapePath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		input      string
		want       string
		wantErr    bool
		wantOffset int
	}{
		{
			name:  "Empty Input Is Identity",
			input: "",
			want:  "",
		},
		{
			name:  "No Escapes",
			input: "/plain/path",
			want:  "/plain/path",
		},
		{
			name:  "Space Escape",
			input: "/a%20b",
			want:  "/a b",
		},
		{
			name:  "Lowercase Hex Digits",
			input: "/%2fetc",
			want:  "//etc",
		},
		{
			name:  "Uppercase Hex Digits",
			input: "/%2Fetc",
			want:  "//etc",
		},
		{
			name:  "Plus Passes Through Unchanged",
			input: "/a+b",
			want:  "/a+b",
		},
		{
			name:  "Adjacent Escapes",
			input: "/%41%42%43",
			want:  "/ABC",
		},
		{
			name:  "Escaped Percent",
			input: "/100%25",
			want:  "/100%",
		},
		{
			name:  "Non ASCII Octets",
			input: "/caf%C3%A9",
			want:  "/café",
		},
		{
			name:       "Invalid Hex Pair",
			input:      "/a%gz",
			wantErr:    true,
			wantOffset: 2,
		},
		{
			name:       "One Hex Digit Then End",
			input:      "/a%2",
			wantErr:    true,
			wantOffset: 2,
		},
		{
			name:       "Lone Percent At End",
			input:      "/a%",
			wantErr:    true,
			wantOffset: 2,
		},
		{
			name:       "Half Valid Pair",
			input:      "/%a_x",
			wantErr:    true,
			wantOffset: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := UnescapePath(tt.input)

			if tt.wantErr {
				pe := assertKind(t, err, KindInvalidEscape)
				if pe.Offset != tt.wantOffset {
					t.Errorf("UnescapePath(%q) error offset = %d, want %d", tt.input, pe.Offset, tt.wantOffset)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnescapePath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("UnescapePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
