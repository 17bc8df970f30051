package server

import (
	"bytes"
	"net/http"
)

// auditResponseWriter tees the response into a bounded buffer so the
// audit entry carries a capped copy of the body without the middleware
// holding full payloads in memory.
type auditResponseWriter struct {
	http.ResponseWriter
	statusCode int
	limit      int
	body       bytes.Buffer
}

func newAuditResponseWriter(w http.ResponseWriter, limit int) *auditResponseWriter {
	return &auditResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
		limit:          limit,
	}
}

func (w *auditResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards everything to the client but buffers at most limit
// bytes for the audit entry.
func (w *auditResponseWriter) Write(b []byte) (int, error) {
	if remaining := w.limit - w.body.Len(); remaining > 0 {
		if len(b) > remaining {
			w.body.Write(b[:remaining])
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

func (w *auditResponseWriter) StatusCode() int {
	return w.statusCode
}

func (w *auditResponseWriter) Body() string {
	return w.body.String()
}
