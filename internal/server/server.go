// Package server accepts TCP connections, reads one request per connection
// and answers it through a route table.
package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/catatsuy/kotori"
	"github.com/catatsuy/kotori/internal/wire"
)

type Server struct {
	table       *kotori.SyncTable
	logger      *zap.Logger
	readTimeout time.Duration
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReadTimeout bounds the time a connection may take to send its request
// and receive the response. Zero disables the deadline.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = d
	}
}

func New(table *kotori.SyncTable, opts ...Option) *Server {
	s := &Server{
		table:  table,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done or Accept fails. It
// closes ln and waits for in-flight connections before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)
	s.logger.Info("listening", zap.Stringer("addr", ln.Addr()))

	g.Go(func() error {
		<-ctx.Done()
		_ = ln.Close()
		return nil
	})
	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			g.Go(func() error {
				s.handleConn(ctx, conn)
				return nil
			})
		}
	})

	err := g.Wait()
	if err != nil {
		s.logger.Error("accept failed", zap.Error(err))
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if s.readTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.readTimeout))
	}

	req, err := wire.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
		case errors.Is(err, wire.ErrMalformedRequest):
			s.logger.Debug("malformed request", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
			s.write(conn, http.StatusBadRequest, nil, nil)
		default:
			s.logger.Warn("failed to read request", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
		}
		return
	}

	res := kotori.NewResponse()
	if err := s.table.Serve(res, req); err != nil {
		s.logger.Debug("no route", zap.String("method", req.Method.String()), zap.String("path", req.Path))
		s.write(conn, http.StatusNotFound, nil, nil)
		return
	}
	s.write(conn, res.StatusCode(), res.Header, res.Bytes())
}

func (s *Server) write(conn net.Conn, status int, header http.Header, body []byte) {
	if err := wire.WriteResponse(conn, status, header, body); err != nil {
		s.logger.Warn("failed to write response", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
	}
}
