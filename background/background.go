// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - interface type to allow a list of processes to be started
// and cleanly stopped
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for stopping the started processes
type T struct {
	sync.WaitGroup
	finish chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finish: make(chan struct{}),
	}
	register.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(process Process) {
			defer register.Done()
			process.Run(args, register.finish)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
// and wait for them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}
	close(t.finish)
	t.Wait()
}
