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

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns a copy of the URL with its components brought to a
// canonical form: the host is lowercased, an explicit port equal to the
// scheme's default is dropped, and every textual component is normalized to
// Unicode Normalization Form C (NFC). The scheme is already lowercased at
// parse time.
//
// Normalization never fails; a URL that is already canonical comes back as
// an identical value.
func (u *URL) Normalize() *URL {
	v := *u

	v.host = strings.ToLower(u.host)
	if !v.ipv6Host {
		v.host = norm.NFC.String(v.host)
	}

	if def, ok := defaultPorts[v.scheme]; ok && v.port == strconv.Itoa(def) {
		v.port = ""
	}

	v.userInfo = norm.NFC.String(u.userInfo)
	v.rawPath = norm.NFC.String(u.rawPath)
	v.unescapedPath = norm.NFC.String(u.unescapedPath)
	v.query = norm.NFC.String(u.query)
	v.fragment = norm.NFC.String(u.fragment)

	return &v
}

// ASCIIString serializes the full URL using only ASCII characters: the host
// is converted with IDNA ToASCII so it remains resolvable in DNS, and any
// non-ASCII codepoint in the user info, path, query, or fragment is
// percent-encoded from its UTF-8 bytes. Components are NFC-normalized before
// encoding. It fails only when the host cannot be represented in IDNA.
func (u *URL) ASCIIString() (string, error) {
	var b strings.Builder
	b.Grow(len(u.rawPath) + len(u.host) + len(u.query) + len(u.fragment) + 16)

	hasHost := u.host != ""

	if u.scheme != "" {
		b.WriteString(u.scheme)
		if hasHost {
			b.WriteString("://")
		} else {
			b.WriteByte(':')
		}
	}
	if u.userInfo != "" {
		percentEncode(norm.NFC.String(u.userInfo), &b)
		if hasHost {
			b.WriteByte('@')
		}
	}
	if hasHost {
		if u.ipv6Host {
			b.WriteByte('[')
			b.WriteString(u.host)
			b.WriteByte(']')
		} else {
			asciiHost, err := idna.ToASCII(norm.NFC.String(u.host))
			if err != nil {
				return "", fmt.Errorf("IDNA conversion of host %q: %w", u.host, err)
			}
			b.WriteString(asciiHost)
		}
	}
	if u.port != "" {
		b.WriteByte(':')
		b.WriteString(u.port)
	}
	if u.rawPath != "" {
		if u.rawPath[0] != '/' {
			b.WriteByte('/')
		}
		percentEncode(norm.NFC.String(u.rawPath), &b)
	}
	if u.query != "" {
		b.WriteByte('?')
		percentEncode(norm.NFC.String(u.query), &b)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		percentEncode(norm.NFC.String(u.fragment), &b)
	}
	return b.String(), nil
}

// percentEncode writes s to b, percent-encoding the UTF-8 bytes of every
// non-ASCII codepoint and passing ASCII through unchanged.
func percentEncode(s string, b *strings.Builder) {
	for _, ru := range s {
		if ru <= unicode.MaxASCII {
			b.WriteRune(ru)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], ru)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "%%%02X", buf[i])
		}
	}
}
