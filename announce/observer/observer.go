// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

// Observer - interface for announcement event handlers
type Observer interface {
	Update(string, [][]byte)
}
