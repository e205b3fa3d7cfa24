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

import "strings"

// UnescapePath decodes the percent-encoded octets of a URL path.
//
// Every "%XX" sequence, where XX is a pair of hexadecimal digits, is replaced
// by the byte it encodes; every other byte passes through unchanged. In
// particular '+' is NOT decoded to a space: this is a path unescaper, and the
// form-encoding convention for '+' applies only to query strings, which this
// package deliberately never unescapes.
//
// A '%' that is not followed by exactly two hexadecimal digits is a hard
// failure reported as a *ParseError with KindInvalidEscape; the error offset
// is the position of the offending '%' within s. An empty input yields an
// empty output.
func UnescapePath(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
			end := i + 3
			if end > len(s) {
				end = len(s)
			}
			return "", newParseError(KindInvalidEscape, i,
				"invalid percent-encoded sequence %q in path", s[i:end])
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return b.String(), nil
}
