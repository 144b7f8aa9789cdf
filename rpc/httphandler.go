// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 Coinmint Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/coinmint-inc/coinmintd/fault"
	"github.com/coinmint-inc/coinmintd/mode"
	"github.com/coinmint-inc/coinmintd/party"
	"github.com/coinmint-inc/coinmintd/provenance"
)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if connectionCount.Increment() > s.maximumConnections {
		connectionCount.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer connectionCount.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// GET the full enriched transfer log, newest first
func (s *httpHandler) transfers(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if mode.IsNot(mode.Normal) {
		sendServiceUnavailable(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	records, err := provenance.Get().List()
	if nil != err {
		s.log.Errorf("transfers: %s", err)
		sendInternalServerError(w)
		return
	}

	sendReply(w, records)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// POST a new party registration
func (s *httpHandler) signup(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if mode.IsNot(mode.Normal) {
		sendServiceUnavailable(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	var request signupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); nil != err {
		sendBadRequest(w, "invalid request body")
		return
	}

	partyId, err := party.Register(request.Name, request.Email, request.Phone, request.Address, request.Password)
	switch {
	case nil == err:
		// fall through to the reply
	case fault.IsErrExists(err):
		sendError(w, err.Error(), http.StatusConflict)
		return
	case fault.IsErrLength(err), fault.IsErrInvalid(err):
		sendBadRequest(w, err.Error())
		return
	default:
		s.log.Errorf("signup: %s", err)
		sendInternalServerError(w)
		return
	}

	type reply struct {
		PartyId uint64 `json:"partyId,string"`
	}
	sendReply(w, reply{PartyId: partyId})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST a credential check
func (s *httpHandler) login(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if mode.IsNot(mode.Normal) {
		sendServiceUnavailable(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); nil != err {
		sendBadRequest(w, "invalid request body")
		return
	}

	partyId, err := party.Authenticate(request.Email, request.Password)
	if nil != err {
		// do not reveal whether the email or the password failed
		sendUnauthorized(w)
		return
	}

	partyRecord, err := party.Fetch(partyId)
	if nil != err {
		s.log.Errorf("login: %s", err)
		sendInternalServerError(w)
		return
	}

	type reply struct {
		PartyId uint64 `json:"partyId,string"`
		Name    string `json:"name"`
		Email   string `json:"email"`
	}
	sendReply(w, reply{
		PartyId: partyId,
		Name:    partyRecord.Name,
		Email:   partyRecord.Email,
	})
}

// to allow a GET for the same response as the Node.Info RPC
// (restricted to the allow list)
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	type theReply struct {
		Mode    string `json:"mode"`
		RPCs    uint64 `json:"rpcs"`
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
	}

	sendReply(w, theReply{
		Mode:    mode.String(),
		RPCs:    connectionCount.Uint64(),
		Version: s.version,
		Uptime:  time.Since(s.start).String(),
	})
}

// check the remote address against the allow list for a path
func (s *httpHandler) isAllowed(path string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}
	addr := strings.Trim(r.RemoteAddr[:last], "[]")
	ip := net.ParseIP(addr)
	if nil == ip {
		return false
	}
	for _, cidr := range s.allow[path] {
		if cidr.Contains(ip) {
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
	w.Write(text)
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
func sendUnauthorized(w http.ResponseWriter) {
	sendError(w, "unauthorized", http.StatusUnauthorized)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "too many requests", http.StatusTooManyRequests)
}
func sendServiceUnavailable(w http.ResponseWriter) {
	sendError(w, "service unavailable", http.StatusServiceUnavailable)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}
func sendBadRequest(w http.ResponseWriter, message string) {
	sendError(w, message, http.StatusBadRequest)
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
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(text)
}
