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
	"strconv"
	"strings"
)

// maxPort is the highest valid TCP/UDP port number.
const maxPort = 65535

// parser holds the state for a single decomposition. The stages run in
// grammar order: scheme, authority, path, query, fragment. Each stage is
// optional; a stage that does not match simply leaves its component empty and
// hands over to the next one. Only a malformed present section fails.
type parser struct {
	input *parserInput
	url   URL
}

// run is the entry point of the parser. It validates the raw input and then
// walks the grammar stages.
func (p *parser) run() (*URL, error) {
	s := p.input.originalString
	if s == "" {
		return nil, newParseError(KindMalformedURL, -1, "empty URL string")
	}
	for i := 0; i < len(s); i++ {
		if isControl(s[i]) {
			return nil, newParseError(KindMalformedURL, i,
				"control character %q in URL", s[i])
		}
	}
	if err := p.parseScheme(); err != nil {
		return nil, err
	}
	return &p.url, nil
}

// parseScheme consumes a leading scheme token followed by ':' and dispatches
// to the authority stage when "://" was matched, or straight to the path
// stage otherwise. Input that carries no scheme at all is re-read from the
// start as a bare path reference.
func (p *parser) parseScheme() error {
	r, ok := p.input.peek()
	if !ok {
		return newParseError(KindMalformedURL, 0, "empty URL string")
	}
	if r == ':' {
		return newParseError(KindMalformedURL, 0, "missing scheme before ':'")
	}
	if !isASCIILetter(r) {
		// Schemes start with a letter; anything else is a bare path.
		return p.parsePath()
	}

	for {
		r, ok := p.input.next()
		if !ok {
			// End of input with no ':' in sight: the token was the first
			// path segment, not a scheme.
			p.input.reset()
			return p.parsePath()
		}
		switch {
		case isSchemeChar(r):
			// Still inside the scheme token.
		case r == ':':
			p.url.scheme = strings.ToLower(p.input.originalString[:p.input.position()-1])
			if strings.HasPrefix(p.input.asStr(), "//") {
				p.input.skip(2)
				if err := p.parseAuthority(); err != nil {
					return err
				}
			}
			return p.parsePath()
		default:
			// Invalid scheme character: re-read the input as a bare path.
			p.input.reset()
			return p.parsePath()
		}
	}
}

// parseAuthority consumes the authority section up to the next '/', '?', '#'
// or end of input, and splits it into user info, host, and port.
//
// The split rules are deliberate tie-breaks, not ambiguity tolerance: user
// info is everything left of the LAST '@' (passwords may contain '@'), and a
// non-bracketed host ends at the FIRST ':' (such hosts cannot contain one).
func (p *parser) parseAuthority() error {
	start := p.input.position()
	rest := p.input.asStr()

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority := rest[:end]
	p.input.skip(end)

	hostPort := authority
	hostPortStart := start
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		p.url.userInfo = authority[:i]
		hostPort = authority[i+1:]
		hostPortStart = start + i + 1
	}

	if strings.HasPrefix(hostPort, "[") {
		j := strings.IndexByte(hostPort, ']')
		if j < 0 {
			return newParseError(KindMalformedURL, hostPortStart,
				"unterminated IPv6 literal %q", hostPort)
		}
		p.url.host = hostPort[1:j]
		p.url.ipv6Host = true
		after := hostPort[j+1:]
		switch {
		case after == "":
			return nil
		case after[0] == ':':
			return p.parsePort(after[1:], hostPortStart+j+2)
		default:
			return newParseError(KindMalformedURL, hostPortStart+j+1,
				"unexpected %q after IPv6 literal", after)
		}
	}

	if i := strings.IndexByte(hostPort, ':'); i >= 0 {
		p.url.host = hostPort[:i]
		return p.parsePort(hostPort[i+1:], hostPortStart+i+1)
	}
	p.url.host = hostPort
	return nil
}

// parsePort validates a port that followed an explicit ':' in the authority.
// An explicitly present port must be all digits and fit in [0, 65535]; a bare
// trailing ':' counts as present-but-empty and is rejected rather than
// defaulted.
func (p *parser) parsePort(port string, offset int) error {
	if port == "" {
		return newParseError(KindInvalidPort, offset, "empty port after ':'")
	}
	for i := 0; i < len(port); i++ {
		if !isASCIIDigit(rune(port[i])) {
			return newParseError(KindInvalidPort, offset+i,
				"non-numeric port %q", port)
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > maxPort {
		return newParseError(KindInvalidPort, offset,
			"port %q out of range [0, %d]", port, maxPort)
	}
	p.url.port = port
	return nil
}

// parsePath consumes the path up to the next '?' or '#', stores it verbatim,
// populates the unescaped cache, and dispatches to the query or fragment
// stage.
func (p *parser) parsePath() error {
	start := p.input.position()
	rest := p.input.asStr()

	end := strings.IndexAny(rest, "?#")
	if end < 0 {
		end = len(rest)
	}
	p.url.rawPath = rest[:end]
	p.input.skip(end)

	unescaped, err := UnescapePath(p.url.rawPath)
	if err != nil {
		// Re-anchor the escape error at its position in the full input.
		pe := err.(*ParseError)
		pe.Offset += start
		return pe
	}
	p.url.unescapedPath = unescaped

	if p.input.startsWith('?') {
		p.input.skip(1)
		return p.parseQuery()
	}
	return p.parseFragment()
}

// parseQuery consumes the query up to the next '#' and stores it verbatim.
// The query is never unescaped; its encoding is protocol-specific.
func (p *parser) parseQuery() error {
	rest := p.input.asStr()
	end := strings.IndexByte(rest, '#')
	if end < 0 {
		end = len(rest)
	}
	p.url.query = rest[:end]
	p.input.skip(end)
	return p.parseFragment()
}

// parseFragment consumes a '#' and stores the remainder of the input
// verbatim as the fragment.
func (p *parser) parseFragment() error {
	if !p.input.startsWith('#') {
		return nil
	}
	p.input.skip(1)
	p.url.fragment = p.input.asStr()
	return nil
}
