package server

import (
	"net/http"

	"github.com/harrycraft44/rotnode/internal/ctxlog"
)

// recoverMiddleware serves errh instead of letting a handler panic take the
// whole server down. Headers already set by the panicking handler are
// dropped; a partially written response cannot be unwritten.
func recoverMiddleware(next, errh http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log := ctxlog.Get(r.Context())
				log.Error("recovered panic", "error", err)

				clear(w.Header())
				errh.ServeHTTP(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
