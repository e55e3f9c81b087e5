// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput is returned when a message or input element set holds no elements.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInvalidState is returned when a session operation is called out of phase order, or after completion.
	ErrInvalidState = errors.New("invalid session state for this operation")

	// ErrPeerCardinality is returned when the peer's double-blinded message doesn't hold exactly one point per
	// entry of this party's own blinded message.
	ErrPeerCardinality = errors.New("peer message cardinality does not match the prepared set")

	// ErrCrypto is returned when an underlying group operation fails.
	ErrCrypto = errors.New("cryptographic operation failed")

	errHashLength = errors.New("invalid element hash length")
)

// InvalidPointsError reports the positions in a peer message that do not hold a valid compressed group element.
// No arithmetic is performed on any entry of a message containing an invalid point.
type InvalidPointsError struct {
	// Indexes lists the offending positions in the peer message, in ascending order.
	Indexes []int
}

// Error implements the error interface for InvalidPointsError.
func (e *InvalidPointsError) Error() string {
	indexes := make([]string, len(e.Indexes))
	for i, index := range e.Indexes {
		indexes[i] = strconv.Itoa(index)
	}

	return "invalid blinded points at indexes: " + strings.Join(indexes, ", ")
}
