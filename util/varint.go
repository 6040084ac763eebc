// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant byte first, the top bit of
// each byte is an extension flag; the ninth byte, if present, holds
// the remaining eight bits unflagged
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	if value < 0x80 {
		return append(result, byte(value))
	}

	for i := 0; i < Varint64MaximumBytes && value != 0; i += 1 {
		b := byte(value)
		if value >= 0x80 {
			b |= 0x80
		}
		result = append(result, b)
		value >>= 7
	}
	return result
}

// ClippedVarint64 - decode a Varint64 as an int restricted to a range
//
// returns 0, 0 if the decoded value is truncated or outside
// [minimum..maximum]; minimum must not be negative
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < minimum {
		return 0, 0
	}
	value, count := FromVarint64(buffer)
	if 0 == count || value < uint64(minimum) || value > uint64(maximum) {
		return 0, 0
	}
	return int(value), count
}

// FromVarint64 - convert an array of up to Varint64MaximumBytes to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if varint64 buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count, b := range buffer {
		if count >= Varint64MaximumBytes {
			break
		}
		if 8 == count { // ninth byte: all eight bits
			result |= uint64(b) << shift
			return result, count + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, count + 1
		}
		shift += 7
	}
	return 0, 0 // truncated
}
