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

package sample_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/gofhe/sample"
	"github.com/stretchr/testify/assert"
)

func testKey() *[32]byte {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	return &key
}

func TestUniformDet(t *testing.T) {
	// The keystream is fixed by the key, hence so are the samples.
	bits := []int64{1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0}

	sampler := sample.NewUniformDet(big.NewInt(2), testKey())
	for i, b := range bits {
		val, err := sampler.Sample()
		assert.NoError(t, err)
		assert.Equal(t, b, val.Int64(), "unexpected sample at position %d", i)
	}
}

func TestUniformDet_Reproducibility(t *testing.T) {
	s1 := sample.NewUniformDet(big.NewInt(8), testKey())
	s2 := sample.NewUniformDet(big.NewInt(8), testKey())

	for i := 0; i < 64; i++ {
		v1, err := s1.Sample()
		assert.NoError(t, err)
		v2, err := s2.Sample()
		assert.NoError(t, err)
		assert.Equal(t, v1, v2, "samplers with equal keys should agree")
	}
}

func TestUniformDet_Rejection(t *testing.T) {
	// 5 is not a power of two, so sampling has to skip
	// out-of-range values instead of reducing them.
	max := big.NewInt(5)
	sampler := sample.NewUniformDet(max, testKey())

	for i := 0; i < 64; i++ {
		val, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, val.Sign() >= 0, "sample should be non-negative")
		assert.True(t, val.Cmp(max) < 0, "sample should be smaller than max")
	}
}

func TestUniform(t *testing.T) {
	max := big.NewInt(256)
	sampler := sample.NewUniform(max)

	for i := 0; i < 64; i++ {
		val, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, val.Sign() >= 0, "sample should be non-negative")
		assert.True(t, val.Cmp(max) < 0, "sample should be smaller than max")
	}
}

func TestBit(t *testing.T) {
	sampler := sample.NewBit()

	for i := 0; i < 64; i++ {
		val, err := sampler.Sample()
		assert.NoError(t, err)
		assert.True(t, val.Int64() == 0 || val.Int64() == 1, "sample should be a bit")
	}
}
