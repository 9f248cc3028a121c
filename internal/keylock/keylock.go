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

// Package keylock provides mutual exclusion per string key, backed by a
// fixed set of striped mutexes.
package keylock

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultStripes = 64

// KeyLock serializes critical sections per key. Two distinct keys may hash
// to the same stripe and then contend, but one key always maps to the same
// stripe, so sections for the same key are mutually exclusive.
type KeyLock struct {
	stripes []sync.Mutex
	mask    uint64
}

// New returns a KeyLock with the given number of stripes, rounded up to the
// next power of two. A non-positive count uses the default of 64.
func New(stripes int) *KeyLock {
	if stripes <= 0 {
		stripes = defaultStripes
	}
	n := 1
	for n < stripes {
		n <<= 1
	}
	return &KeyLock{
		stripes: make([]sync.Mutex, n),
		mask:    uint64(n - 1),
	}
}

func (kl *KeyLock) stripe(key string) *sync.Mutex {
	return &kl.stripes[xxhash.Sum64String(key)&kl.mask]
}

// Lock acquires the stripe for key, blocking until it is available.
func (kl *KeyLock) Lock(key string) {
	kl.stripe(key).Lock()
}

// Unlock releases the stripe for key. It must only be called by the holder.
func (kl *KeyLock) Unlock(key string) {
	kl.stripe(key).Unlock()
}
