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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBareRoom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"room@conference.example.org", "room@conference.example.org"},
		{"room@conference.example.org/nick", "room@conference.example.org"},
		{"Room@Conference.Example.ORG/Nick", "room@conference.example.org"},
		{"room@conference.example.org/nick/with/slashes", "room@conference.example.org"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BareRoom(tc.in), "input %q", tc.in)
	}
}

func TestRoomAddress(t *testing.T) {
	assert.Equal(t, "room@conference.example.org", RoomAddress("Room", "conference.example.org"))
	assert.Equal(t, "conference.example.org", RoomAddress("", "Conference.example.org"))
}
