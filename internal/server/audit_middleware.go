package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxAuditBodyBytes = 4096

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if claims := GetClaims(r.Context()); claims != nil {
			entry.UserID = claims.UserID
		}

		entry.EntityType, entry.EntityID = extractEntity(r.URL.Path)

		contentType := r.Header.Get("Content-Type")
		if r.Body != nil && !strings.Contains(contentType, "multipart/form-data") {
			requestBody, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBodyBytes))
			if err == nil {
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(requestBody), r.Body))
				entry.Request = string(requestBody)
			}
		}

		wrw := newAuditResponseWriter(w, maxAuditBodyBytes)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.StatusCode()
		entry.Response = wrw.Body()

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// extractEntity pulls the audited entity out of the request path.
// Collection routes (POST /bags/scan, GET /orders) carry a type but no id.
func extractEntity(path string) (string, string) {
	parts := strings.Split(strings.TrimPrefix(path, "/api/"), "/")
	if len(parts) == 0 {
		return "", ""
	}

	switch parts[0] {
	case "bags":
		if len(parts) > 1 && parts[1] != "scan" {
			return "bag", parts[1]
		}
		return "bag", ""
	case "orders":
		if len(parts) > 1 && parts[1] != "complete" {
			return "order", parts[1]
		}
		return "order", ""
	case "users":
		if len(parts) > 1 && parts[1] != "profile" {
			return "user", parts[1]
		}
		return "user", ""
	case "scans":
		return "scan", ""
	case "picks":
		return "pick_issue", ""
	}
	return "", ""
}

func getHandlerName(path string, method string) string {
	trimmed := strings.TrimPrefix(path, "/api")

	switch {
	case strings.HasPrefix(trimmed, "/users/profile"):
		if method == http.MethodPut {
			return "handleUpdateProfile"
		}
		return "handleGetProfile"
	case strings.HasPrefix(trimmed, "/users/") && strings.HasSuffix(trimmed, "/orders"):
		return "handleUserCompletedOrders"
	case strings.HasPrefix(trimmed, "/bags/scan"):
		return "handleBagScan"
	case strings.HasPrefix(trimmed, "/bags/"):
		if method == http.MethodPut {
			return "handleUpdateBag"
		}
		return "handleGetBag"
	case strings.HasPrefix(trimmed, "/picks/report-issue"):
		return "handleReportPickIssue"
	case strings.HasPrefix(trimmed, "/scans"):
		if method == http.MethodPost {
			return "handleRecordScan"
		}
		return "handleListScans"
	case strings.HasPrefix(trimmed, "/orders/complete"):
		return "handleCompleteOrder"
	case strings.HasPrefix(trimmed, "/orders/"):
		return "handleGetCompletedOrder"
	case strings.HasPrefix(trimmed, "/orders"):
		return "handleCompletedOrdersByStatus"
	}

	return "unknown"
}
