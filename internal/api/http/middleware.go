package http

import (
	"context"
	"net/http"
	"strconv"

	"warehouse-backend/internal/logger"

	"github.com/google/uuid"
)

type contextKey string

const (
	contextKeyUserID    contextKey = "user_id"
	contextKeyRequestID contextKey = "request_id"
)

// RequestID attaches a request id to the context and logs the request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := context.WithValue(r.Context(), contextKeyRequestID, requestID)
		logger.WithRequest(requestID).Debug("Handling request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WarehouseAccess trusts the host's pre-resolved authorization: the caller
// identity and the "may use the warehouse" boolean arrive as headers set by
// the authenticating proxy in front. The engine performs no role lookup of
// its own.
func WarehouseAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Warehouse-Access") != "true" {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "warehouse access required"})
			return
		}
		userID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 32)
		if err != nil {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "caller identity required"})
			return
		}
		ctx := context.WithValue(r.Context(), contextKeyUserID, int32(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerID(ctx context.Context) int32 {
	if id, ok := ctx.Value(contextKeyUserID).(int32); ok {
		return id
	}
	return 0
}
