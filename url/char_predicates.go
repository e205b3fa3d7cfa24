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

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isSchemeChar checks if a rune may appear in a scheme token after its
// leading letter, per RFC 3986, Section 3.1.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// isControl checks if a byte is a US-ASCII control character. Control
// characters are rejected anywhere in a URL string.
func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

// isHexDigit checks if a byte is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

// unhex returns the value of an ASCII hexadecimal digit. The caller must
// ensure isHexDigit(c) holds.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
