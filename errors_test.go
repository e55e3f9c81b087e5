// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi_test

import (
	"errors"
	"testing"

	"github.com/bytemare/psi"
)

func TestInvalidPointsError_Message(t *testing.T) {
	err := &psi.InvalidPointsError{Indexes: []int{2, 5, 7}}

	expected := "invalid blinded points at indexes: 2, 5, 7"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{psi.ErrEmptyInput, psi.ErrInvalidState, psi.ErrPeerCardinality, psi.ErrCrypto}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel errors %q and %q are not distinct", a, b)
			}
		}
	}
}

func TestInvalidPointsError_NotASentinel(t *testing.T) {
	err := error(&psi.InvalidPointsError{Indexes: []int{0}})

	for _, sentinel := range []error{psi.ErrEmptyInput, psi.ErrInvalidState, psi.ErrCrypto} {
		if errors.Is(err, sentinel) {
			t.Fatalf("InvalidPointsError wrongly matches %q", sentinel)
		}
	}

	var invalid *psi.InvalidPointsError
	if !errors.As(err, &invalid) {
		t.Fatal("errors.As failed on InvalidPointsError")
	}
}
