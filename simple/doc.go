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

// Package simple includes a simplified scheme for fully homomorphic
// encryption of single bits.
//
// The scheme is modeled on encryption based on the learning with
// errors (LWE) problem, reduced to its bare arithmetic: a small
// modulus, binary key vectors, and ciphertexts carrying one encoded
// bit. It supports addition and multiplication of ciphertexts whose
// decryptions equal XOR and AND of the original bits.
//
// The scheme is intended for studying the arithmetic of homomorphic
// operations and offers no security: the modulus is tiny, the noise
// term is fixed at zero, the public key is not derived from the
// secret key, and encryption of a given bit is deterministic for a
// fixed public key. These simplifications are part of the scheme's
// contract and are kept on purpose.
//
// For instantiation see struct LWE.
package simple
