// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bankd/fault"
)

// Connection - type to hold an IP and port
type Connection struct {
	ip   net.IP
	port uint16
}

// NewConnection - convert a host:port string to a connection
func NewConnection(hostPort string) (*Connection, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return nil, fault.InvalidIpAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return nil, fault.InvalidIpAddress
	}
	if ipv4 := IP.To4(); nil != ipv4 {
		IP = ipv4
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return nil, fault.InvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return nil, fault.InvalidPortNumber
	}
	conn := &Connection{
		ip:   IP,
		port: uint16(numericPort),
	}
	return conn, nil
}

// ConnectionFromIPandPort - convert an IP and port to a connection
func ConnectionFromIPandPort(ip net.IP, port uint16) *Connection {
	if ipv4 := ip.To4(); nil != ipv4 {
		ip = ipv4
	}
	return &Connection{
		ip:   ip,
		port: port,
	}
}

// CanonicalIPandPort - make the IP:Port into canonical string
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// prefix is optional and can be empty ("")
// returns prefixed string and IPv6 flag
func (conn *Connection) CanonicalIPandPort(prefix string) (string, bool) {

	port := strconv.Itoa(int(conn.port))
	if nil != conn.ip.To4() {
		return prefix + conn.ip.String() + ":" + port, false
	}
	return prefix + "[" + conn.ip.String() + "]:" + port, true
}

// MarshalText - convert a connection to text (for JSON)
func (conn Connection) MarshalText() ([]byte, error) {
	s, _ := conn.CanonicalIPandPort("")
	return []byte(s), nil
}

// PackedConnection - type for packed byte buffer IP and port
type PackedConnection []byte

const (
	packedV4Length = 7  // 1 byte length, 2 bytes port, 4 bytes IPv4
	packedV6Length = 19 // 1 byte length, 2 bytes port, 16 bytes IPv6
)

// Pack - pack an IP and port into a byte buffer
func (conn *Connection) Pack() PackedConnection {
	b := []byte(conn.ip)
	length := len(b)
	if 4 != length && 16 != length {
		logger.Panicf("connection.Pack: invalid IP length: %d", length)
	}
	size := length + 3
	b2 := make([]byte, size)
	b2[0] = byte(size)
	b2[1] = byte(conn.port >> 8)
	b2[2] = byte(conn.port)
	copy(b2[3:], b)
	return b2
}

// Unpack - unpack a byte buffer into an IP and port
// returns the connection and the number of bytes consumed
// a nil connection means the record is corrupt
func (packed PackedConnection) Unpack() (*Connection, int) {
	if nil == packed {
		return nil, 0
	}
	count := len(packed)
	if count < packedV4Length {
		return nil, 0
	}

	size := int(packed[0])
	if packedV4Length != size && packedV6Length != size {
		return nil, 0
	}
	if size > count {
		return nil, 0
	}

	conn := &Connection{
		ip:   net.IP(packed[3:size]),
		port: uint16(packed[1])<<8 + uint16(packed[2]),
	}
	return conn, size
}

// Unpack46 - unpack first IPv4 and first IPv6 from a byte buffer
// any extra addresses beyond the first of each type are ignored
func (packed PackedConnection) Unpack46() (*Connection, *Connection) {

	ipv4Connection := (*Connection)(nil)
	ipv6Connection := (*Connection)(nil)

scanning:
	for {
		conn, n := packed.Unpack()
		if 0 == n {
			break scanning
		}
		packed = packed[n:]
		if nil == conn {
			continue scanning
		}
		if nil != conn.ip.To4() {
			if nil == ipv4Connection {
				ipv4Connection = conn
			}
		} else if nil == ipv6Connection {
			ipv6Connection = conn
		}
		if nil != ipv4Connection && nil != ipv6Connection {
			break scanning
		}
	}

	return ipv4Connection, ipv6Connection
}
