package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/itallokavin/gestao-aeronaves/internal/common"
	"github.com/itallokavin/gestao-aeronaves/internal/logging"
)

// Recoverer turns a panic in a handler into a logged 500 with the standard error body
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.ForRequest(r).
				Errorw("Recovered from panic", "panic", fmt.Sprint(rec), "stack", string(debug.Stack()))

			common.RespondAppError(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
