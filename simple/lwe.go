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

package simple

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/fentec-project/gofhe/data"
	gofhe "github.com/fentec-project/gofhe/internal"
	"github.com/fentec-project/gofhe/sample"
	"github.com/pkg/errors"
)

// lweModulus is the modulus q for ciphertexts and keys. The scheme
// relies on q and the derived scale being small enough that sums of
// two encoded bits do not wrap past q.
const lweModulus = 8

// lweParams represents parameters for the simplified bit FHE scheme.
type lweParams struct {
	keySize int // length of the key vectors

	q     *big.Int // modulus for ciphertext and keys
	scale *big.Int // factor q / 2 for encoding a bit into Z_q
}

// LWE represents a simplified fully homomorphic encryption scheme
// modeled on the LWE problem. It encrypts single bits into
// ciphertexts of keySize + 1 values from [0, q): the first keySize
// entries form a mask paired index-for-index with the key vectors,
// the last entry encodes the message bit scaled by q / 2.
//
// Both keys are binary vectors drawn from a seeded pseudo-random
// stream owned by the instance, so a fixed seed and key size
// reproduce the keys and thus all ciphertexts.
type LWE struct {
	params *lweParams
	noise  sample.Sampler

	secKey data.Vector
	pubKey data.Vector
}

// NewLWE configures a new instance of the scheme with the given key
// size and seed. The noise term of every encryption is zero, which
// makes encryption deterministic per public key.
//
// It returns an error in case the keys could not be generated.
func NewLWE(keySize int, seed int64) (*LWE, error) {
	return NewLWEWithNoise(keySize, seed, nil)
}

// NewLWEWithNoise configures a new instance of the scheme whose
// encryption noise is drawn from the provided sampler instead of
// being fixed at zero. A nil sampler gives the zero-noise scheme.
// Note that decryption recovers the encrypted bit only for noise
// values the small modulus can absorb.
func NewLWEWithNoise(keySize int, seed int64, noise sample.Sampler) (*LWE, error) {
	if keySize < 1 {
		return nil, errors.New("key size should be positive")
	}

	q := big.NewInt(lweModulus)
	params := &lweParams{
		keySize: keySize,
		q:       q,
		scale:   new(big.Int).Div(q, big.NewInt(2)),
	}

	// Both keys come from a single stream fixed by the seed, the
	// secret key drawn first. The public key is an independent draw,
	// not derived from the secret key.
	bits := sample.NewUniformDet(big.NewInt(2), seedToKey(seed))
	secKey, err := data.NewRandomVector(keySize, bits)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate secret key")
	}
	pubKey, err := data.NewRandomVector(keySize, bits)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate public key")
	}

	return &LWE{
		params: params,
		noise:  noise,
		secKey: secKey,
		pubKey: pubKey,
	}, nil
}

// seedToKey expands a seed into a key for the deterministic sampler.
func seedToKey(seed int64) *[32]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	key := sha256.Sum256(buf[:])

	return &key
}

// Encrypt encrypts a single bit message under the instance's public
// key and returns the resulting ciphertext vector of keySize + 1
// elements. If the message is not 0 or 1, it returns an
// InvalidInput error.
func (s *LWE) Encrypt(message int) (data.Vector, error) {
	if message != 0 && message != 1 {
		return nil, gofhe.InvalidInput
	}

	noise := big.NewInt(0)
	if s.noise != nil {
		var err error
		noise, err = s.noise.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "cannot sample noise")
		}
	}

	// Mask entries are the public key bits with the noise term added.
	e := data.NewConstantVector(s.params.keySize, noise)
	ct := s.pubKey.Add(e).Mod(s.params.q)

	// The message is encoded into the last entry by the scale factor.
	msg := new(big.Int).Mul(big.NewInt(int64(message)), s.params.scale)
	msg.Add(msg, noise)
	msg.Mod(msg, s.params.q)

	return append(ct, msg), nil
}

// Decrypt decrypts a ciphertext produced by Encrypt, Add or Multiply
// with the instance's secret key. If the ciphertext does not have
// keySize + 1 elements, it returns a LengthMismatch error.
//
// The returned value is an integer in [0, q). On ciphertexts whose
// accumulated operations stayed within the encoding's tolerance this
// is the plaintext bit; no check of the result against {0, 1} is
// performed.
func (s *LWE) Decrypt(ct data.Vector) (*big.Int, error) {
	if len(ct) != s.params.keySize+1 {
		return nil, gofhe.LengthMismatch
	}

	msgPart := ct[s.params.keySize]
	mask := ct[:s.params.keySize]

	// Lengths are verified above, so the dot product cannot fail.
	dot, _ := mask.Dot(s.secKey)

	// big.Int.Mod is Euclidean, hence the residue lands in [0, q)
	// also when the dot product exceeds the message part.
	msg := new(big.Int).Sub(msgPart, dot)
	msg.Mod(msg, s.params.q)
	msg.Div(msg, s.params.scale)

	return msg, nil
}

// Add homomorphically adds two ciphertexts element-wise modulo q.
// Decrypting the result gives the XOR of the two encrypted bits. If
// the ciphertexts differ in length, it returns a LengthMismatch
// error.
func (s *LWE) Add(ct1, ct2 data.Vector) (data.Vector, error) {
	if len(ct1) != len(ct2) {
		return nil, gofhe.LengthMismatch
	}

	// The message entries follow the same rule as the mask entries.
	return ct1.Add(ct2).Mod(s.params.q), nil
}

// Multiply homomorphically multiplies two ciphertexts. Decrypting
// the result gives the AND of the two encrypted bits. If the
// ciphertexts differ in length, it returns a LengthMismatch error.
func (s *LWE) Multiply(ct1, ct2 data.Vector) (data.Vector, error) {
	if len(ct1) != len(ct2) {
		return nil, gofhe.LengthMismatch
	}

	last := len(ct1) - 1
	ct := ct1[:last].Mul(ct2[:last]).Mod(s.params.q)

	// The encoded bits are recovered from the message entries by
	// integer division, multiplied, and encoded again.
	b1 := new(big.Int).Div(ct1[last], s.params.scale)
	b2 := new(big.Int).Div(ct2[last], s.params.scale)
	msg := b1.Mul(b1, b2)
	msg.Mul(msg, s.params.scale)
	msg.Mod(msg, s.params.q)

	return append(ct, msg), nil
}
