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

package data

import (
	"math/big"
	"testing"

	"github.com/fentec-project/gofhe/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	bound := new(big.Int).Exp(big.NewInt(2), big.NewInt(20), big.NewInt(0))
	sampler := sample.NewUniform(bound)

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	add := x.Add(y)
	sub := x.Sub(y)
	mul := x.Mul(y)
	dot, err := x.Dot(y)

	if err != nil {
		t.Fatalf("Error during inner product: %v", err)
	}

	modulo := int64(104729)
	mod := x.Mod(big.NewInt(modulo))

	innerProd := big.NewInt(0)
	for i := 0; i < l; i++ {
		assert.Equal(t, new(big.Int).Add(x[i], y[i]), add[i], "coordinates should sum correctly")
		assert.Equal(t, new(big.Int).Sub(x[i], y[i]), sub[i], "coordinates should subtract correctly")
		assert.Equal(t, new(big.Int).Mul(x[i], y[i]), mul[i], "coordinates should multiply correctly")
		innerProd = innerProd.Add(innerProd, new(big.Int).Mul(x[i], y[i]))
		assert.Equal(t, new(big.Int).Mod(x[i], big.NewInt(modulo)), mod[i], "coordinates should mod correctly")
	}

	assert.Equal(t, innerProd, dot, "inner product should calculate correctly")

	_, err = x.Dot(Vector{})
	assert.Error(t, err, "inner product of different lengths should fail")
}

func TestVector_Copy(t *testing.T) {
	x := Vector{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	y := x.Copy()

	y[0].SetInt64(5)
	assert.Equal(t, int64(1), x[0].Int64(), "copy should not share elements with the original")
}

func TestVector_Apply(t *testing.T) {
	x := Vector{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	y := x.Apply(func(c *big.Int) *big.Int {
		return new(big.Int).Neg(c)
	})

	for i := range x {
		assert.Equal(t, new(big.Int).Neg(x[i]), y[i], "function should apply to all coordinates")
	}
}

func TestVector_NewConstantVector(t *testing.T) {
	c := big.NewInt(7)
	x := NewConstantVector(4, c)

	assert.Equal(t, 4, len(x))
	for i := range x {
		assert.Equal(t, c, x[i], "all coordinates should equal the constant")
	}

	x[0].SetInt64(1)
	assert.Equal(t, int64(7), c.Int64(), "coordinates should not share the constant")
}
