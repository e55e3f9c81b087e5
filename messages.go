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

	"github.com/bytemare/psi/internal"
)

var (
	errUnmarshalMessageShort  = errors.New("decoding error: insufficient data length")
	errUnmarshalMessageLength = errors.New("decoding error: wrong encoding length")
	errUnmarshalPointLength   = errors.New("decoding error: point length does not match the ciphersuite")
)

// BlindedPoints is the round 1 message: one party's compressed single-blinded points, in first-occurrence input
// order. It carries no element identities, hashes, or index correlations.
type BlindedPoints struct {
	// Points is the ordered set of compressed blinded group elements.
	Points [][]byte `json:"p"`
}

// Serialize returns the compact byte encoding of the message.
func (m *BlindedPoints) Serialize() []byte {
	return serializePoints(m.Points)
}

// Deserialize decodes a compact serialization into m, expecting points of the ciphersuite's compressed element
// length. It only validates the framing; point validation happens when the message enters a session.
func (m *BlindedPoints) Deserialize(c Ciphersuite, data []byte) error {
	points, err := deserializePoints(c, data)
	if err != nil {
		return err
	}

	m.Points = points

	return nil
}

// DoubleBlindedPoints is the round 2 message: the double-blinded forms of the peer's round 1 points, in the peer's
// message order.
type DoubleBlindedPoints struct {
	// Points is the ordered set of compressed double-blinded group elements.
	Points [][]byte `json:"d"`
}

// Serialize returns the compact byte encoding of the message.
func (m *DoubleBlindedPoints) Serialize() []byte {
	return serializePoints(m.Points)
}

// Deserialize decodes a compact serialization into m, expecting points of the ciphersuite's compressed element
// length.
func (m *DoubleBlindedPoints) Deserialize(c Ciphersuite, data []byte) error {
	points, err := deserializePoints(c, data)
	if err != nil {
		return err
	}

	m.Points = points

	return nil
}

// Intersection is the protocol output for one party: the hashes of the elements common to both sets, and their
// double-blinded points for caller side auditing.
type Intersection struct {
	// DoubleBlinded maps each intersection hash to its compressed double-blinded point.
	DoubleBlinded map[ElementHash][]byte `json:"m"`

	// Hashes identifies the common elements, in this party's first-occurrence input order.
	Hashes []ElementHash `json:"h"`
}

// Len returns the number of elements in the intersection.
func (i *Intersection) Len() int {
	return len(i.Hashes)
}

// IsEmpty returns whether the intersection holds no elements.
func (i *Intersection) IsEmpty() bool {
	return len(i.Hashes) == 0
}

// Contains returns whether the element hash h is part of the intersection.
func (i *Intersection) Contains(h ElementHash) bool {
	_, ok := i.DoubleBlinded[h]
	return ok
}

// serializePoints prepends the point count and the per-point length to the concatenated fixed-size points.
func serializePoints(points [][]byte) []byte {
	np := len(points)

	var lp int
	if np != 0 {
		lp = len(points[0])
	}

	out := make([]byte, 0, 2+2+np*lp)
	out = append(out, internal.I2osp2(np)...)
	out = append(out, internal.I2osp2(lp)...)

	for _, point := range points {
		out = append(out, point...)
	}

	return out
}

func deserializePoints(c Ciphersuite, data []byte) ([][]byte, error) {
	if len(data) < 4 {
		return nil, errUnmarshalMessageShort
	}

	np := internal.Os2ip2(data[0:2])
	lp := internal.Os2ip2(data[2:4])

	if np != 0 && lp != c.Group().ElementLength() {
		return nil, errUnmarshalPointLength
	}

	if len(data) != 4+np*lp {
		return nil, errUnmarshalMessageLength
	}

	points := make([][]byte, np)
	for i := range points {
		point := make([]byte, lp)
		copy(point, data[4+i*lp:4+(i+1)*lp])
		points[i] = point
	}

	return points, nil
}
