// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/util"
	"github.com/bitmark-inc/logger"
)

// RedeemerTag - redeemer enumeration selecting the spend transition
type RedeemerTag uint64

// possible redeemer values
const (
	TagNothing RedeemerTag = iota // this must be the first value
	TagMine    RedeemerTag = iota
	TagRedeem  RedeemerTag = iota
	maximumTag RedeemerTag = iota // this must be the last value
	TagFirst   RedeemerTag = TagNothing + 1
	TagLast    RedeemerTag = maximumTag - 1
	TagCount   int         = int(TagLast) // count of usable tags
)

// internal conversion
func toString(tag RedeemerTag) ([]byte, error) {
	switch tag {
	case TagNothing:
		return []byte{}, nil
	case TagMine:
		return []byte("mine"), nil
	case TagRedeem:
		return []byte("redeem"), nil
	default:
		return []byte{}, fault.InvalidRedeemer
	}
}

// convert a string to a redeemer tag
func fromString(in string) (RedeemerTag, error) {
	switch strings.ToLower(in) {
	case "":
		return TagNothing, nil
	case "mine":
		return TagMine, nil
	case "redeem":
		return TagRedeem, nil
	default:
		return TagNothing, fault.InvalidRedeemer
	}
}

// String - convert a redeemer tag to its name
func (tag RedeemerTag) String() string {
	s, err := toString(tag)
	if nil != err {
		logger.Panicf("invalid redeemer tag enumeration: %d", tag)
	}
	return string(s)
}

// GoString - tag value and name, for debugging
func (tag RedeemerTag) GoString() string {
	return fmt.Sprintf("<RedeemerTag#%d:%q>", uint64(tag), tag.String())
}

// IsValid - tag in the range of usable values
// TagNothing is not considered as valid
func (tag RedeemerTag) IsValid() bool {
	return tag >= TagFirst && tag <= TagLast
}

// Scan - convert a redeemer tag name for the scan interface
func (tag *RedeemerTag) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*tag = parsed
	return nil
}

// MarshalText - convert a redeemer tag into JSON
func (tag RedeemerTag) MarshalText() ([]byte, error) {
	return toString(tag)
}

// UnmarshalText - convert a name to a redeemer tag from JSON
func (tag *RedeemerTag) UnmarshalText(s []byte) error {
	t, err := fromString(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}

// Pack - wire form of a redeemer tag
func (tag RedeemerTag) Pack() []byte {
	return util.ToVarint64(uint64(tag))
}

// UnpackRedeemer - decode a redeemer buffer to its tag
//
// anything but a whole-buffer varint holding a usable tag is an
// invalid redeemer: empty buffers, trailing bytes and out of range
// values all fail closed
func UnpackRedeemer(buffer []byte) (RedeemerTag, error) {
	value, used := util.FromVarint64(buffer)
	if 0 == used || used != len(buffer) {
		return TagNothing, fault.InvalidRedeemer
	}
	tag := RedeemerTag(value)
	if !tag.IsValid() {
		return TagNothing, fault.InvalidRedeemer
	}
	return tag, nil
}
