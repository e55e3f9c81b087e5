// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"encoding/binary"
)

// I2osp2 encodes the integer to a 2-byte byte string.
func I2osp2(value int) []byte {
	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, uint16(value))

	return out
}

// Os2ip2 decodes a 2-byte byte string to an integer.
func Os2ip2(data []byte) int {
	return int(binary.BigEndian.Uint16(data))
}

// Dst returns the domain separation tag, i.e. the concatenation of the input.
func Dst(prefix string, contextString []byte) []byte {
	return []byte(prefix + string(contextString))
}
