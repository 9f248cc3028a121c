// Copyright (C) 2025 Chatforge, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package extinfo

import "strings"

// BareRoom normalizes a room address to its bare, case-folded form: any
// resource suffix is stripped and the remainder is lowercased. Two addresses
// that differ only in resource part or case map to the same key.
func BareRoom(addr string) string {
	if i := strings.IndexByte(addr, '/'); i >= 0 {
		addr = addr[:i]
	}
	return strings.ToLower(addr)
}

// RoomAddress builds the bare address for a room name hosted on the given
// chat service domain.
func RoomAddress(name, serviceDomain string) string {
	if name == "" {
		return BareRoom(serviceDomain)
	}
	return BareRoom(name + "@" + serviceDomain)
}
