// Package server implements the TCP front end: one listening socket, one
// request per connection, strictly sequential dispatch to a backend store.
package server

import (
	"net"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/iamNilotpal/ignitedb/internal/codec"
	"github.com/iamNilotpal/ignitedb/internal/store"
	ierrors "github.com/iamNilotpal/ignitedb/pkg/errors"
	"go.uber.org/zap"
)

// Server accepts connections on a single TCP listener and services each one
// to completion before accepting the next. It never spawns a goroutine per
// connection: the wire protocol and the single-writer engine underneath it
// both assume sequential service.
type Server struct {
	addr    string
	backend store.Store
	log     *zap.SugaredLogger
}

// New builds a Server that dispatches decoded requests to backend and logs
// through log.
func New(addr string, backend store.Store, log *zap.SugaredLogger) *Server {
	return &Server{addr: addr, backend: backend, log: log}
}

// Run binds the listening socket and services connections until a fatal
// accept error occurs. Per-connection errors are logged and never stop the
// loop, except a PolicyViolation, which aborts the process (see dispatch).
func (s *Server) Run() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	s.log.Infow("listening", "addr", s.addr)

	var connCount uint64
	for {
		conn, err := listener.Accept()
		if err != nil {
			s.log.Errorw("fatal accept error", "error", err)
			return err
		}

		connCount++
		reqID := uuid.New().String()
		s.handleConnection(conn, reqID)
		s.log.Debugw("connection serviced", "request_id", reqID, "total_connections", connCount)
	}
}

// handleConnection services exactly one request on conn: read, dispatch,
// respond, close. It never returns an error; every failure is translated
// into an Err response or logged and swallowed.
func (s *Server) handleConnection(conn net.Conn, reqID string) {
	defer conn.Close()
	log := s.log.With("request_id", reqID, "remote_addr", conn.RemoteAddr().String())

	framer := codec.NewFramer()
	rec, n, err := framer.ReadOne(conn)

	var resp codec.Response
	switch {
	case err != nil:
		log.Warnw("malformed request", "error", err)
		resp = codec.Err(err.Error())
	case rec == nil:
		log.Warnw("connection sent no data")
		resp = codec.Err("Response had no data")
	default:
		log.Debugw("request received", "bytes", humanize.Bytes(uint64(n)), "kind", rec.Kind)
		resp = s.dispatch(rec, log)
	}

	if _, err := resp.Write(conn); err != nil {
		log.Warnw("failed writing response", "error", err)
	}
}

// dispatch executes a decoded record's command against the backend and
// builds the matching response. A PolicyViolation error means an on-disk
// invariant has been breached (an index entry resolving to a non-Set
// record); that is fatal, not a per-request failure, so dispatch aborts the
// process rather than answering the client and looping back to Accept.
func (s *Server) dispatch(rec *codec.Record, log *zap.SugaredLogger) codec.Response {
	switch rec.Kind {
	case codec.KindSet:
		if err := s.backend.Set(rec.Key, rec.Value); err != nil {
			s.abortOnPolicyViolation(err, log, "Set", rec.Key)
			log.Warnw("set failed", "key", rec.Key, "error", err)
			return codec.Err(err.Error())
		}
		return codec.SuccessfulSet()

	case codec.KindGet:
		value, found, err := s.backend.Get(rec.Key)
		if err != nil {
			s.abortOnPolicyViolation(err, log, "Get", rec.Key)
			log.Warnw("get failed", "key", rec.Key, "error", err)
			return codec.Err(err.Error())
		}
		if !found {
			return codec.KeyNotFound()
		}
		return codec.SuccessfulGet(value)

	case codec.KindRemove:
		if err := s.backend.Remove(rec.Key); err != nil {
			if ee, ok := ierrors.AsEngineError(err); ok && ee.Code() == ierrors.ErrorCodeKeyNotFound {
				return codec.KeyNotFound()
			}
			s.abortOnPolicyViolation(err, log, "Remove", rec.Key)
			log.Warnw("remove failed", "key", rec.Key, "error", err)
			return codec.Err(err.Error())
		}
		return codec.SuccessfulRm()

	default:
		return codec.Err("unrecognized command")
	}
}

// abortOnPolicyViolation terminates the process if err signals a runtime
// invariant breach. Ordinary errors (I/O failures, corrupt records) are
// caught, logged, and returned to the client; a PolicyViolation is not —
// the on-disk state can no longer be trusted, so the operator needs a crash
// to notice rather than a client-visible Err response.
func (s *Server) abortOnPolicyViolation(err error, log *zap.SugaredLogger, operation, key string) {
	ee, ok := ierrors.AsEngineError(err)
	if !ok || ee.Code() != ierrors.ErrorCodePolicyViolation {
		return
	}
	log.Fatalw("invariant violated, aborting", "operation", operation, "key", key, "error", err)
}
