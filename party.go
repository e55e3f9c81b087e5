// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package psi

import (
	"fmt"

	"github.com/bytemare/ecc"

	"github.com/bytemare/psi/internal"
)

// phase tracks a session's progress. Transitions are strictly fresh -> prepared -> computed -> completed, one
// irreversible step per call.
type phase byte

const (
	fresh phase = iota
	prepared
	computed
	completed
)

// Party represents one side of a PSI session, and exposes the functions for its execution: Prepare, Compute, and
// Finalize, in that order. Each call consumes one protocol phase, and calling out of order returns ErrInvalidState.
//
// A Party exclusively owns its secret scalar for the duration of the session. The secret never leaves the Party, no
// message carries it, and Finalize discards it. Distinct sessions are distinct Party instances and need no
// coordination, but a single Party must not be driven from multiple goroutines.
type Party struct {
	*internal.Core

	secret *ecc.Scalar

	// blinded maps an element hash of this party's set to its compressed single-blinded point.
	blinded map[ElementHash][]byte

	// doubleBlinded maps an element hash of this party's set to its compressed double-blinded point, as echoed by
	// the peer during Finalize.
	doubleBlinded map[ElementHash][]byte

	// peerDoubles is the set of compressed double-blinded forms of the peer's points, computed in Compute.
	peerDoubles map[string]struct{}

	// order records the element hashes in first-occurrence input order, matching the round 1 message layout.
	order []ElementHash

	phase phase
}

// Prepare hashes each input element, maps the digest to the group, and blinds the resulting point with the session
// secret. It returns the round 1 message for the peer: one compressed blinded point per distinct element, in
// first-occurrence input order. The message carries no element identities, so an eavesdropper learns only the set
// size. Duplicate elements collapse to a single entry.
func (p *Party) Prepare(elements [][]byte) (*BlindedPoints, error) {
	if p.phase != fresh {
		return nil, ErrInvalidState
	}

	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}

	p.blinded = make(map[ElementHash][]byte, len(elements))
	p.order = make([]ElementHash, 0, len(elements))
	points := make([][]byte, 0, len(elements))

	for _, element := range elements {
		h := ElementHash(p.DigestElement(element))
		if _, ok := p.blinded[h]; ok {
			continue
		}

		e := p.MapToGroup(h[:])
		if e.IsIdentity() {
			return nil, fmt.Errorf("%w: input element maps to the group identity element", ErrCrypto)
		}

		b := p.EncodeElement(internal.Blind(e, p.secret))
		p.blinded[h] = b
		p.order = append(p.order, h)
		points = append(points, b)
	}

	p.phase = prepared

	return &BlindedPoints{Points: points}, nil
}

// Compute applies the session secret on top of the peer's round 1 blinded points, and returns the round 2 message to
// send back: the double-blinded points, in the peer's message order. Every peer point is validated before any
// arithmetic; invalid entries are rejected as a whole with an InvalidPointsError listing their positions.
func (p *Party) Compute(peer *BlindedPoints) (*DoubleBlindedPoints, error) {
	if p.phase != prepared {
		return nil, ErrInvalidState
	}

	if peer == nil || len(peer.Points) == 0 {
		return nil, ErrEmptyInput
	}

	decoded, err := p.decodeAll(peer.Points)
	if err != nil {
		return nil, err
	}

	p.peerDoubles = make(map[string]struct{}, len(decoded))
	points := make([][]byte, len(decoded))

	for i, e := range decoded {
		d := p.EncodeElement(internal.Blind(e, p.secret))
		points[i] = d
		p.peerDoubles[string(d)] = struct{}{}
	}

	p.phase = computed

	return &DoubleBlindedPoints{Points: points}, nil
}

// Finalize derives the intersection from the peer's round 2 message: the double-blinded forms of this party's own
// round 1 points, in round 1 order. A point at position i equal to one of the values computed in Compute identifies
// the element hash at position i as common to both sets. Finalize discards the session secret and completes the
// session; subsequent calls on the Party return ErrInvalidState.
func (p *Party) Finalize(peer *DoubleBlindedPoints) (*Intersection, error) {
	if p.phase != computed {
		return nil, ErrInvalidState
	}

	if peer == nil || len(peer.Points) != len(p.order) {
		return nil, fmt.Errorf("%w: want %d points", ErrPeerCardinality, len(p.order))
	}

	if _, err := p.decodeAll(peer.Points); err != nil {
		return nil, err
	}

	p.doubleBlinded = make(map[ElementHash][]byte, len(p.order))
	hashes := make([]ElementHash, 0, len(p.order))
	matches := make(map[ElementHash][]byte)

	for i, d := range peer.Points {
		h := p.order[i]
		p.doubleBlinded[h] = d

		if _, ok := p.peerDoubles[string(d)]; ok {
			hashes = append(hashes, h)
			matches[h] = d
		}
	}

	p.secret = nil
	p.phase = completed

	return &Intersection{Hashes: hashes, DoubleBlinded: matches}, nil
}

// DoubleBlinded returns the compressed double-blinded point recorded for the element hash h during Finalize, for
// caller side verification.
func (p *Party) DoubleBlinded(h ElementHash) ([]byte, bool) {
	d, ok := p.doubleBlinded[h]
	return d, ok
}

// decodeAll validates and decodes every point of an incoming message, rejecting the message as a whole if any entry
// fails.
func (p *Party) decodeAll(points [][]byte) ([]*ecc.Element, error) {
	decoded := make([]*ecc.Element, len(points))

	var bad []int

	for i, data := range points {
		e, err := p.DecodeElement(data)
		if err != nil {
			bad = append(bad, i)
			continue
		}

		decoded[i] = e
	}

	if len(bad) != 0 {
		return nil, &InvalidPointsError{Indexes: bad}
	}

	return decoded, nil
}
