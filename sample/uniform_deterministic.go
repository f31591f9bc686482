/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// UniformDet samples deterministic pseudo-random values from the
// interval [0, max), with max at least 2. The values are read in
// order from a salsa20 keystream determined by key, so two samplers
// constructed with the same key and max produce the same sequence
// of samples. Values with more bits than needed for max are skipped,
// hence every sample is uniform on [0, max).
type UniformDet struct {
	key     *[32]byte
	max     *big.Int
	maxBits int
	read    int
}

// NewUniformDet returns an instance of the UniformDet sampler.
// It accepts an upper bound max on the sampled values and a key
// for the underlying pseudo-random keystream.
func NewUniformDet(max *big.Int, key *[32]byte) *UniformDet {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()

	return &UniformDet{
		key:     key,
		max:     max,
		maxBits: maxBits,
	}
}

// Sample returns the next value of the sampler's keystream reduced
// to maxBits bits, skipping values that fall outside [0, max). The
// sampler's position in the keystream advances with every call.
func (u *UniformDet) Sample() (*big.Int, error) {
	maxBytes := (u.maxBits / 8) + 1
	over := uint(8 - (u.maxBits % 8))
	if over == 8 {
		maxBytes--
		over = 0
	}

	nonce := make([]byte, 8)
	for {
		// The salsa20 keystream is stateless, so the already consumed
		// prefix is regenerated and discarded to resume at position read.
		in := make([]byte, u.read+maxBytes)
		out := make([]byte, u.read+maxBytes)
		salsa20.XORKeyStream(out, in, nonce, u.key)

		chunk := out[u.read:]
		u.read += maxBytes

		chunk[0] = chunk[0] >> over
		ret := new(big.Int).SetBytes(chunk)
		if ret.Cmp(u.max) < 0 {
			return ret, nil
		}
	}
}
