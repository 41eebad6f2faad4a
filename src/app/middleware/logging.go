package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"oblog/src/infra/logger"
)

// maxLoggedBody caps the request and response bodies copied into a log line.
const maxLoggedBody = 2048

// Logging emits one line per request with the method, path, status,
// latency and both bodies, plus the last error a handler attached to the
// context. The level follows the status: 5xx at error, 4xx at warn,
// everything else at info.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		// Only the logged prefix is buffered; the handler reads the rest
		// straight from the connection.
		var reqBody []byte
		if body := c.Request.Body; body != nil {
			reqBody, _ = io.ReadAll(io.LimitReader(body, maxLoggedBody+1))
			c.Request.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(reqBody), body), body}
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request", truncate(reqBody),
			"response", truncate(rec.body.Bytes()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.Last().Err)
		}
		logger.WithRequestID(log, GetRequestID(c)).Log(c.Request.Context(), level, "http request", attrs...)
	}
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}
