// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strconv"
	"time"

	peerlib "github.com/libp2p/go-libp2p-core/peer"

	"github.com/bitmark-inc/bankd/announce"
	"github.com/bitmark-inc/bankd/counter"
	"github.com/bitmark-inc/bankd/mode"
	"github.com/bitmark-inc/bankd/peering"
	"github.com/bitmark-inc/bankd/reservoir"
	"github.com/bitmark-inc/logger"
)

// defaults for the peers query
const (
	defaultCount = 10
	maximumCount = 100
)

// Handler - the HTTPS RPC handler surface
type Handler interface {
	SetAllow(allow map[string][]*net.IPNet)
	Root(w http.ResponseWriter, r *http.Request)
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Connections(w http.ResponseWriter, r *http.Request)
	Peers(w http.ResponseWriter, r *http.Request)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	count              counter.Counter
}

// New - create the handler
func New(
	log *logger.L,
	server *rpc.Server,
	start time.Time,
	version string,
	maximumConnections uint64,
) Handler {
	return &httpHandler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the per-path allowed source networks
func (s *httpHandler) SetAllow(allow map[string][]*net.IPNet) {
	s.allow = allow
}

// Root - matches anything not matched and returns error
func (s *httpHandler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (s *httpHandler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// BankInfo - bank state summary in the details reply
type BankInfo struct {
	Issued   bool   `json:"issued"`
	Sequence uint64 `json:"sequence,string"`
	Point    string `json:"point"`
	Owners   int    `json:"owners"`
}

// Counters - transition counters in the details reply
type Counters struct {
	Pending int `json:"pending"`
	Applied int `json:"applied"`
}

// DetailsReply - the /bankd/details payload
type DetailsReply struct {
	Chain              string   `json:"chain"`
	Mode               string   `json:"mode"`
	Bank               BankInfo `json:"bank"`
	TransitionCounters Counters `json:"transitionCounters"`
	RPCs               uint64   `json:"rpcs"`
	Peers              uint64   `json:"peers"`
	Version            string   `json:"version"`
	Uptime             string   `json:"uptime"`
	PublicKey          string   `json:"publicKey"`
}

// Details - to allow a GET for the same response as Node.Info RPC
func (s *httpHandler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	point := ""
	if currentPoint, ok := reservoir.CurrentPoint(); ok {
		point = currentPoint.String()
	}

	reply := DetailsReply{
		Chain: mode.ChainName(),
		Mode:  mode.String(),
		Bank: BankInfo{
			Issued:   reservoir.IsIssued(),
			Sequence: reservoir.Sequence(),
			Point:    point,
			Owners:   reservoir.Owners(),
		},
		RPCs:      s.count.Uint64(),
		Peers:     peering.ConnectedCount(),
		Version:   s.version,
		Uptime:    time.Since(s.start).String(),
		PublicKey: peering.IDString(),
	}
	reply.TransitionCounters.Pending, reply.TransitionCounters.Applied = reservoir.ReadCounters()

	sendReply(w, reply)
}

// Connections - list all connected peers
func (s *httpHandler) Connections(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("connections", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	type reply struct {
		ConnectedTo []*peering.Connected `json:"connectedTo"`
	}

	var info reply
	info.ConnectedTo = peering.GetAllPeers()
	if nil == info.ConnectedTo {
		info.ConnectedTo = []*peering.Connected{}
	}

	sendReply(w, info)
}

// to output peer data
type entry struct {
	PeerID    string    `json:"peerid"`
	Listeners []string  `json:"listeners"`
	Timestamp time.Time `json:"timestamp"`
}

// Peers - find data on all peers seen in the announcer
// (restricted to local_allow)
//
// query parameters:
//   peerid=<base58-p2p-id>  [ID to start after]
//   count=<int>             [1..100  default: 10]
func (s *httpHandler) Peers(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("peers", r) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if s.count.Increment() > s.maximumConnections {
		s.count.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer s.count.Decrement()

	_ = r.ParseForm()

	// count parsing
	count := defaultCount
	if n, err := strconv.Atoi(r.Form.Get("count")); nil == err && n >= 1 && n <= maximumCount {
		count = n
	}

	peers := make([]entry, 0, count)

	if !announce.Initialised() {
		sendReply(w, peers)
		return
	}

	// missing or invalid id starts from the beginning of the ring
	id, _ := peerlib.IDB58Decode(r.Form.Get("peerid"))

item_loop:
	for i := 0; i < count; i += 1 {
		nextID, listeners, timestamp, err := announce.GetNext(id)
		if nil != err {
			sendInternalServerError(w)
			return
		}
		if nextID == id { // wrapped around the ring
			break item_loop
		}
		id = nextID

		lc := make([]string, 0, len(listeners))
		for _, listener := range listeners {
			lc = append(lc, listener.String())
		}

		peers = append(peers, entry{
			PeerID:    nextID.Pretty(),
			Listeners: lc,
			Timestamp: timestamp,
		})
	}

	sendReply(w, peers)
}

// check the remote address against the allowed networks for a path
func (s *httpHandler) isAllowed(path string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}

	addr := net.ParseIP(host)
	if nil == addr {
		return false
	}

	set, ok := s.allow[path]
	if !ok {
		return false
	}

	for _, cidr := range set {
		if cidr.Contains(addr) {
			return true
		}
	}

	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
