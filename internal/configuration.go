// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal handles the core PSI cryptographic functionalities.
package internal

import (
	"fmt"

	"github.com/bytemare/ecc"
	"github.com/bytemare/hash"
)

const (
	// Version is a string explicitly stating the protocol version name, used for domain separation.
	Version = "DHPSI-V1"

	// ElementHashLength is the byte length of an element digest.
	ElementHashLength = 32

	contextStringPrefix = Version + "-"
	hash2groupDSTPrefix = "HashToGroup-"
)

// CiphersuiteIdentifier maps a group to its canonical identifier.
var CiphersuiteIdentifier = map[ecc.Group]string{
	ecc.Ristretto255Sha512: "ristretto255-SHA512",
	ecc.P256Sha256:         "P256-SHA256",
	ecc.P384Sha384:         "P384-SHA384",
	ecc.P521Sha512:         "P521-SHA512",
	ecc.Secp256k1Sha256:    "secp256k1-SHA256",
}

// A Core holds the cryptographic configuration and methods shared by both parties of a PSI session.
type Core struct {
	Hash   hash.Hasher
	h2gDST []byte
	Group  ecc.Group
}

// ContextString builds the protocol constant string used for domain separation tags.
func ContextString(name string) []byte {
	return []byte(contextStringPrefix + name)
}

func makeCore(g ecc.Group, h hash.Hash) *Core {
	ctx := ContextString(CiphersuiteIdentifier[g])

	return &Core{
		Group:  g,
		Hash:   h.New(),
		h2gDST: Dst(hash2groupDSTPrefix, ctx),
	}
}

// LoadConfiguration returns a core configuration given the group.
func LoadConfiguration(g ecc.Group) *Core {
	switch g {
	case ecc.Ristretto255Sha512:
		return makeCore(ecc.Ristretto255Sha512, hash.SHA512)
	case ecc.P256Sha256:
		return makeCore(ecc.P256Sha256, hash.SHA256)
	case ecc.P384Sha384:
		return makeCore(ecc.P384Sha384, hash.SHA384)
	case ecc.P521Sha512:
		return makeCore(ecc.P521Sha512, hash.SHA512)
	case ecc.Secp256k1Sha256:
		return makeCore(ecc.Secp256k1Sha256, hash.SHA256)
	default:
		panic(fmt.Sprintf("invalid PSI dependency - Group: %v", g))
	}
}

// DigestElement returns the canonical fixed-length digest of an input element, truncating the suite's hash output
// if necessary. The digest is the element's identity throughout a session.
func (c *Core) DigestElement(element []byte) [ElementHashLength]byte {
	var digest [ElementHashLength]byte
	copy(digest[:], c.Hash.Hash(element))

	return digest
}

// MapToGroup deterministically maps an element digest to an element of the Group, indistinguishable from a random
// element and not invertible back to the digest.
func (c *Core) MapToGroup(digest []byte) *ecc.Element {
	return c.Group.HashToGroup(digest, c.h2gDST)
}
