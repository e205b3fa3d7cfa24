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

// Components is a bitmask selecting which URL components participate in
// serialization. Combine values with the bitwise OR operator:
//
//	u.Format(url.HostComponent | url.PortComponent)
type Components int

const (
	// SchemeComponent selects the scheme (e.g. "http").
	SchemeComponent Components = 1 << iota
	// UserInfoComponent selects the user info (e.g. "user:pass").
	UserInfoComponent
	// HostComponent selects the host name or IP literal.
	HostComponent
	// PortComponent selects the explicitly stored port. A default port
	// implied by the scheme is never serialized.
	PortComponent
	// PathComponent selects the path in its escaped (raw) form.
	PathComponent
	// QueryComponent selects the query string.
	QueryComponent
	// FragmentComponent selects the fragment.
	FragmentComponent

	// AllComponents selects every component of the URL.
	AllComponents = SchemeComponent | UserInfoComponent | HostComponent |
		PortComponent | PathComponent | QueryComponent | FragmentComponent
)

// has reports whether every component in c is selected by the mask.
func (m Components) has(c Components) bool {
	return m&c == c
}
