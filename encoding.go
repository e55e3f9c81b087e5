// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi

import (
	"github.com/bytemare/ecc"

	"github.com/bytemare/psi/internal"
)

// DecodeElement decodes e to a validated element in the group, rejecting non-canonical encodings, points outside
// the prime-order subgroup, and the identity element.
func (c Ciphersuite) DecodeElement(e []byte) (*ecc.Element, error) {
	return internal.LoadConfiguration(ecc.Group(c)).DecodeElement(e)
}

// DecodeScalar decodes s to a scalar in the group.
func (c Ciphersuite) DecodeScalar(s []byte) (*ecc.Scalar, error) {
	result := ecc.Group(c).NewScalar()

	if err := result.Decode(s); err != nil {
		return nil, err
	}

	return result, nil
}
