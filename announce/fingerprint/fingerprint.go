// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import "encoding/hex"

// Type - SHA3-256 fingerprint of a certificate
type Type [32]byte

// MarshalText - convert fingerprint to hex text
func (fingerprint Type) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(fingerprint))
	buffer := make([]byte, size)
	hex.Encode(buffer, fingerprint[:])
	return buffer, nil
}
