// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
)

// MaximumNameLength - limit on the asset name part of a token id
const MaximumNameLength = 32

// Name - the asset name part of a token id
// raw bytes held in a string so the whole id stays usable as a map key
type Name string

// ID - identifies one token class
// the policy is the digest of its controlling script
type ID struct {
	Policy digest.Digest `json:"policy"` // hex
	Name   Name          `json:"name"`   // hex
}

// NewName - validate and convert raw bytes to a Name
func NewName(s []byte) (Name, error) {
	if len(s) > MaximumNameLength {
		return "", fault.InvalidTokenName
	}
	return Name(s), nil
}

// String - name as hex for use by the fmt package (for %s)
func (name Name) String() string {
	return hex.EncodeToString([]byte(name))
}

// MarshalText - name as hex text
func (name Name) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(name))
	buffer := make([]byte, size)
	hex.Encode(buffer, []byte(name))
	return buffer, nil
}

// UnmarshalText - hex text to a name
func (name *Name) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) > MaximumNameLength {
		return fault.InvalidTokenName
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*name = Name(buffer[:byteCount])
	return nil
}

// String - id as policy.name hex for use by the fmt package (for %s)
func (id ID) String() string {
	return id.Policy.String() + "." + id.Name.String()
}

// Compare - byte ordering over policy then name
// the result will be 0 if id==other, -1 if id < other, +1 if id > other
func (id ID) Compare(other ID) int {
	c := bytes.Compare(id.Policy[:], other.Policy[:])
	if 0 != c {
		return c
	}
	return bytes.Compare([]byte(id.Name), []byte(other.Name))
}
