// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"github.com/bytemare/ecc"
)

// RandomScalar returns a scalar drawn uniformly from the group's scalar field, using a cryptographically secure
// randomness source. Exhaustion of that source is not recoverable and aborts the process.
func RandomScalar(g ecc.Group) *ecc.Scalar {
	return g.NewScalar().Random()
}

// Blind multiplies the element by the scalar in constant time with respect to the scalar, leaving e untouched.
func Blind(e *ecc.Element, secret *ecc.Scalar) *ecc.Element {
	return e.Copy().Multiply(secret)
}
