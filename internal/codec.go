// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"errors"
	"fmt"

	"github.com/bytemare/ecc"
)

var (
	errEncodingLength = errors.New("invalid element encoding length")
	errDecodeIdentity = errors.New("element is the group identity element")
)

// EncodeElement returns the fixed-size compressed encoding of e.
func (c *Core) EncodeElement(e *ecc.Element) []byte {
	return e.Encode()
}

// DecodeElement decodes data into a validated element of the Group. It returns an error if data is not of the
// group's compressed encoding length, is not a canonical encoding of a point on the group's subgroup, or encodes
// the identity element. This must succeed before any arithmetic is done on peer provided input.
func (c *Core) DecodeElement(data []byte) (*ecc.Element, error) {
	if len(data) != c.Group.ElementLength() {
		return nil, errEncodingLength
	}

	e := c.Group.NewElement()
	if err := e.Decode(data); err != nil {
		return nil, fmt.Errorf("could not decode element: %w", err)
	}

	if e.IsIdentity() {
		return nil, errDecodeIdentity
	}

	return e, nil
}
