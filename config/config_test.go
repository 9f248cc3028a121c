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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.ServiceDomain)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, uint64(10_000), cfg.Cache.Capacity)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MUCEXT_SERVICE_DOMAIN", "conference.example.org")
	t.Setenv("MUCEXT_CACHE_TTL", "5m")
	t.Setenv("MUCEXT_CACHE_CAPACITY", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "conference.example.org", cfg.ServiceDomain)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, uint64(250), cfg.Cache.Capacity)
}
