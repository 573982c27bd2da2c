package server

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/catatsuy/kotori"
	"github.com/catatsuy/kotori/internal/config"
)

// Install registers every configured route on table. It stops at the first
// registration error.
func Install(table *kotori.SyncTable, routes []config.Route) error {
	for i, r := range routes {
		method, err := kotori.ParseMethod(r.Method)
		if err != nil {
			return fmt.Errorf("route[%d]: %w", i, err)
		}
		if err := table.Handle(method, r.Path, staticRoute(r)); err != nil {
			return fmt.Errorf("route[%d]: %w", i, err)
		}
	}
	return nil
}

func staticRoute(r config.Route) kotori.HandlerFunc {
	body := []byte(r.Body)
	return func(res *kotori.Response, req *kotori.Request) {
		for k, v := range r.Header {
			res.Header.Set(k, v)
		}
		if r.Status != 0 {
			res.Status = r.Status
		}
		_, _ = res.Write(body)
	}
}

// AccessLog logs every resolved request at info level.
func AccessLog(logger *zap.Logger) kotori.Middleware {
	return func(next kotori.Handler) kotori.Handler {
		return kotori.HandlerFunc(func(res *kotori.Response, req *kotori.Request) {
			start := time.Now()
			next.ServeRoute(res, req)
			logger.Info("request",
				zap.String("method", req.Method.String()),
				zap.String("path", req.Path),
				zap.Int("status", res.StatusCode()),
				zap.Int("bytes", len(res.Bytes())),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
