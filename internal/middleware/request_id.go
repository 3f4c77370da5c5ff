package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/itallokavin/gestao-aeronaves/internal/constants"
	reqctx "github.com/itallokavin/gestao-aeronaves/internal/context"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		w.Header().Set(constants.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), requestID)))
	})
}

const maxRequestIDLen = 128
