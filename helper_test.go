// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi_test

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/bytemare/ecc"

	"github.com/bytemare/psi"
)

// helper functions

type configuration struct {
	name        string
	ciphersuite psi.Ciphersuite
	group       ecc.Group
}

var configurationTable = []configuration{
	{
		name:        "Ristretto255",
		ciphersuite: psi.Ristretto255Sha512,
		group:       ecc.Ristretto255Sha512,
	},
	{
		name:        "P256Sha256",
		ciphersuite: psi.P256Sha256,
		group:       ecc.P256Sha256,
	},
	{
		name:        "P384Sha384",
		ciphersuite: psi.P384Sha384,
		group:       ecc.P384Sha384,
	},
	{
		name:        "P521Sha512",
		ciphersuite: psi.P521Sha512,
		group:       ecc.P521Sha512,
	},
	{
		name:        "Secp256k1Sha256",
		ciphersuite: psi.Secp256k1,
		group:       ecc.Secp256k1Sha256,
	},
}

func testAll(t *testing.T, f func(*configuration)) {
	for _, test := range configurationTable {
		t.Run(test.name, func(t *testing.T) {
			f(&test)
		})
	}
}

// getBadRistrettoElement returns an encoding that is not a canonical Ristretto255 element.
func getBadRistrettoElement() []byte {
	a := "2a292df7e32cababbd9de088d1d1abec9fc0440f637ed2fba145094dc14bea08"
	decoded, _ := hex.DecodeString(a)

	return decoded
}

// getWrongLengthElement returns an encoding of the wrong length for the group, invalid in every ciphersuite.
func getWrongLengthElement(g ecc.Group) []byte {
	bad := make([]byte, g.ElementLength()+1)
	for i := range bad {
		bad[i] = 0xff
	}

	return bad
}

func randomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := rand.Read(r); err != nil {
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

// runRound1 prepares both parties and returns their round 1 messages.
func runRound1(
	t *testing.T, c psi.Ciphersuite, aliceSet, bobSet [][]byte,
) (alice, bob *psi.Party, aliceMsg, bobMsg *psi.BlindedPoints) {
	t.Helper()

	alice = c.Party()
	bob = c.Party()

	aliceMsg, err := alice.Prepare(aliceSet)
	if err != nil {
		t.Fatal(err)
	}

	bobMsg, err = bob.Prepare(bobSet)
	if err != nil {
		t.Fatal(err)
	}

	return alice, bob, aliceMsg, bobMsg
}

// runProtocol drives a full two-round exchange between two sets and returns both parties' intersections.
func runProtocol(t *testing.T, c psi.Ciphersuite, aliceSet, bobSet [][]byte) (*psi.Intersection, *psi.Intersection) {
	t.Helper()

	alice, bob, aliceMsg, bobMsg := runRound1(t, c, aliceSet, bobSet)

	aliceEcho, err := alice.Compute(bobMsg)
	if err != nil {
		t.Fatal(err)
	}

	bobEcho, err := bob.Compute(aliceMsg)
	if err != nil {
		t.Fatal(err)
	}

	aliceResult, err := alice.Finalize(bobEcho)
	if err != nil {
		t.Fatal(err)
	}

	bobResult, err := bob.Finalize(aliceEcho)
	if err != nil {
		t.Fatal(err)
	}

	return aliceResult, bobResult
}

func toByteSets(items ...string) [][]byte {
	set := make([][]byte, len(items))
	for i, item := range items {
		set[i] = []byte(item)
	}

	return set
}
