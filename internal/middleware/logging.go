// Package middleware provides connect interceptors shared by every service.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a connect interceptor that logs every RPC call
// with its procedure, outcome, and duration.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				code := connect.CodeOf(err)
				attrs = append(attrs, "code", code)
				if code == connect.CodeInternal || code == connect.CodeUnknown {
					slog.Error("RPC error", append(attrs, "error", err)...)
				} else {
					// Expected failures (validation, not-found) stay at warn.
					slog.Warn("RPC error", append(attrs, "error", err)...)
				}
			} else {
				slog.Info("RPC ok", attrs...)
			}

			return resp, err
		}
	}
}
