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

// Format serializes the components selected by mask in canonical order:
// scheme, user info, host, port, path, query, fragment. Any subset is legal,
// including the empty mask (yielding an empty string); formatting never
// fails.
//
// A separator is emitted only when the components on both of its sides are
// selected and present, so a mask of HostComponent alone yields exactly the
// host with no stray ':' or '@'. The path is emitted in its escaped (raw)
// form with a leading '/' synthesized if the input lacked one; the port is
// emitted only when it was explicit in the input — a scheme default is never
// synthesized into output.
func (u *URL) Format(mask Components) string {
	var b strings.Builder

	withHost := mask.has(HostComponent) && u.host != ""

	if mask.has(SchemeComponent) && u.scheme != "" {
		b.WriteString(u.scheme)
		if withHost {
			b.WriteString("://")
		} else {
			b.WriteByte(':')
		}
	}
	if mask.has(UserInfoComponent) && u.userInfo != "" {
		b.WriteString(u.userInfo)
		if withHost {
			b.WriteByte('@')
		}
	}
	if withHost {
		if u.ipv6Host {
			b.WriteByte('[')
			b.WriteString(u.host)
			b.WriteByte(']')
		} else {
			b.WriteString(u.host)
		}
	}
	if mask.has(PortComponent) && u.port != "" {
		b.WriteByte(':')
		b.WriteString(u.port)
	}
	if mask.has(PathComponent) && u.rawPath != "" {
		if u.rawPath[0] != '/' {
			b.WriteByte('/')
		}
		b.WriteString(u.rawPath)
	}
	if mask.has(QueryComponent) && u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if mask.has(FragmentComponent) && u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}
