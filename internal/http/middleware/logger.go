package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// TraceIDHeader — заголовок со сквозным идентификатором запроса.
const TraceIDHeader = "X-Trace-ID"

type ctxKey int

const (
	loggerKey ctxKey = iota
	traceIDKey
)

// Logger — middleware структурированного логирования запросов.
// Принимает валидный uuid из X-Trace-ID, иначе генерирует новый.
func Logger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.NewString()
			}

			// Логгер для обработчиков и сервисов
			coreLog := log.With(slog.String("trace_id", traceID))

			httpLog := coreLog.With(
				slog.String("http_method", r.Method),
				slog.String("http_path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			ctx := context.WithValue(r.Context(), loggerKey, coreLog)
			ctx = context.WithValue(ctx, traceIDKey, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(TraceIDHeader, traceID)
			start := time.Now()

			httpLog.Debug("request started")

			next.ServeHTTP(ww, r.WithContext(ctx))

			httpLog.Info("request finished",
				slog.Int("status_code", ww.Status()),
				slog.Int("bytes_written", ww.BytesWritten()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

// LoggerFromContext возвращает логгер запроса или fallback, если middleware не подключён.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return log
	}
	return fallback
}

// TraceIDFromContext возвращает идентификатор запроса.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}
