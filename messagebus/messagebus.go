// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// Queue - a 1:1 queue
type Queue struct {
	c    chan Message
	size int
}

// BroadcastQueue - a 1:M queue
// all listeners receive a copy of every message
type BroadcastQueue struct {
	sync.Mutex
	in   chan Message
	out  []chan Message
	size int
}

// exported message queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Broadcast *BroadcastQueue `size:"1000"` // accepted transitions out to peering and publishing
	Connector *Queue          `size:"50"`   // to control outgoing peer connections
	Announce  *Queue          `size:"50"`   // to control the announcer
	TestQueue *Queue          `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// commands that are de-duplicated on the broadcast queue so the same
// transition is not flooded to the network twice
var cacheableCommands = map[string]struct{}{
	"transition": {},
}

var cache = struct {
	sync.Mutex
	m map[string]struct{}
}{
	m: make(map[string]struct{}),
}

func init() {

	// this will be a struct type
	busType := reflect.TypeOf(Bus)

	// get write access by using pointer + Elem()
	busValue := reflect.ValueOf(&Bus).Elem()

	// scan each field
	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize < 1 {
			m := fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag)
			panic(m)
		}

		switch busValue.Field(i).Type() {

		case reflect.TypeOf((*BroadcastQueue)(nil)):
			q := &BroadcastQueue{
				in:   make(chan Message, queueSize),
				out:  make([]chan Message, 0, 10),
				size: queueSize,
			}
			go q.multicast()
			busValue.Field(i).Set(reflect.ValueOf(q))

		case reflect.TypeOf((*Queue)(nil)):
			q := &Queue{
				c:    make(chan Message, queueSize),
				size: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))

		default:
			m := fmt.Sprintf("queue: %v has invalid type: %v", fieldInfo, busValue.Field(i).Type())
			panic(m)
		}
	}
}

// key for the de-duplication cache
func cacheKey(m Message) string {
	key := m.Command
	for _, p := range m.Parameters {
		key += string(p)
	}
	return key
}

// DropCache - remove a message from the de-duplication cache
// so that it can be broadcast again
func DropCache(m Message) {
	if _, ok := cacheableCommands[m.Command]; !ok {
		return
	}
	cache.Lock()
	delete(cache.m, cacheKey(m))
	cache.Unlock()
}

// Send - send a message to a 1:1 queue
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - drop all pending messages from a 1:1 queue
func (queue *Queue) Release() {
loop:
	for {
		select {
		case <-queue.c:
		default:
			break loop
		}
	}
}

// Send - send a message to a 1:M queue
//
// repeated cacheable messages are dropped until DropCache
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	if _, ok := cacheableCommands[command]; ok {
		key := cacheKey(m)
		cache.Lock()
		_, seen := cache.m[key]
		if !seen {
			cache.m[key] = struct{}{}
		}
		cache.Unlock()
		if seen {
			return
		}
	}

	queue.in <- m
}

// Chan - get a new channel to read from a 1:M queue
//
// each call creates a new listener; a size of zero gives an
// unbuffered channel
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	c := make(chan Message, size)
	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()
	return c
}

// background to copy messages to all listeners
//
// a listener that is not ready simply misses the message
func (queue *BroadcastQueue) multicast() {
	for {
		data := <-queue.in

		queue.Lock()
		out := queue.out
		queue.Unlock()

		for _, c := range out {
			select {
			case c <- data:
			default:
			}
		}
	}
}
