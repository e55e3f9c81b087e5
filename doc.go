// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package psi implements two-party Private Set Intersection (PSI) over Elliptic Curve Prime Order Groups, using
// Diffie-Hellman commutative blinding. Two mutually distrusting parties, each holding a private set of byte string
// elements, learn exactly the elements they have in common and nothing about the elements they don't.
//
// The protocol is symmetric and runs in two message rounds. Each party hashes its elements to the group, blinds the
// resulting points with a fresh session secret, and sends them to the peer (round 1). Each party then applies its own
// secret on top of the peer's blinded points and returns the result (round 2). Since scalar multiplication commutes,
// a common element yields the same double-blinded point on both sides, and matching the round 2 echo against the
// locally computed values reveals the intersection.
//
// The package is transport and serialization agnostic: messages are plain structs the caller exchanges over a channel
// of its choosing. The exchange must be secured (e.g. with TLS), as the semi-honest model offers no protection
// against active tampering.
package psi
