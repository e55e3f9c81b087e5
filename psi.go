// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi

import (
	"encoding/hex"
	"fmt"

	"github.com/bytemare/ecc"

	"github.com/bytemare/psi/internal"
)

// Ciphersuite identifies the prime-order group and hash function a PSI session operates on.
type Ciphersuite byte

const (
	// Ristretto255Sha512 identifies the Ristretto255 group and SHA-512.
	Ristretto255Sha512 = Ciphersuite(ecc.Ristretto255Sha512)

	// P256Sha256 identifies the NIST P-256 group and SHA-256.
	P256Sha256 = Ciphersuite(ecc.P256Sha256)

	// P384Sha384 identifies the NIST P-384 group and SHA-384.
	P384Sha384 = Ciphersuite(ecc.P384Sha384)

	// P521Sha512 identifies the NIST P-512 group and SHA-512.
	P521Sha512 = Ciphersuite(ecc.P521Sha512)

	// Secp256k1 identifies the SECp256k1 group and SHA-256.
	Secp256k1 = Ciphersuite(ecc.Secp256k1Sha256)
)

// FromGroup returns a Ciphersuite given a Group.
func FromGroup(g ecc.Group) Ciphersuite {
	return Ciphersuite(g)
}

// Group returns the elliptic curve prime-order group of the ciphersuite.
func (c Ciphersuite) Group() ecc.Group {
	return ecc.Group(c)
}

// Name returns the canonical identifier of the ciphersuite.
func (c Ciphersuite) Name() string {
	return internal.CiphersuiteIdentifier[ecc.Group(c)]
}

// String implements the Stringer() interface for the Ciphersuite.
func (c Ciphersuite) String() string {
	return c.Name()
}

// Party returns a new session participant for the ciphersuite, with a fresh random secret scalar. A Party serves a
// single protocol execution and must not be shared between sessions or goroutines.
func (c Ciphersuite) Party() *Party {
	core := internal.LoadConfiguration(ecc.Group(c))

	return &Party{
		Core:          core,
		secret:        internal.RandomScalar(core.Group),
		blinded:       nil,
		doubleBlinded: nil,
		peerDoubles:   nil,
		order:         nil,
		phase:         fresh,
	}
}

// DigestElement returns the canonical digest identifying element within the ciphersuite. The same element always
// yields the same digest, so callers can relate intersection hashes back to their own input elements.
func (c Ciphersuite) DigestElement(element []byte) ElementHash {
	return ElementHash(internal.LoadConfiguration(ecc.Group(c)).DigestElement(element))
}

// ElementHash is the canonical fixed-length digest identifying a set element.
type ElementHash [internal.ElementHashLength]byte

// Hex returns the hexadecimal representation of h.
func (h ElementHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler, returning the hexadecimal form of h.
func (h ElementHash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, decoding the hexadecimal form of an element hash.
func (h *ElementHash) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("could not decode element hash: %w", err)
	}

	if len(decoded) != internal.ElementHashLength {
		return errHashLength
	}

	copy(h[:], decoded)

	return nil
}
