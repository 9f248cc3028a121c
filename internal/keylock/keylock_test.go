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

package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeCountRoundsUp(t *testing.T) {
	assert.Len(t, New(0).stripes, 64)
	assert.Len(t, New(1).stripes, 1)
	assert.Len(t, New(3).stripes, 4)
	assert.Len(t, New(64).stripes, 64)
	assert.Len(t, New(65).stripes, 128)
}

func TestSameKeySerializes(t *testing.T) {
	kl := New(16)

	const workers = 20
	var counter int
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				kl.Lock("room@conference.example.org")
				counter++
				kl.Unlock("room@conference.example.org")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*100, counter)
}

func TestStableStripeMapping(t *testing.T) {
	kl := New(16)
	assert.Same(t, kl.stripe("a"), kl.stripe("a"))
}
