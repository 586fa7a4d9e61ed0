package server

import (
	"crypto/subtle"
	"net/http"
)

type admin struct {
	key             string
	notFoundHandler http.Handler
}

func newAdmin(key string, notFoundHandler http.Handler) *admin {
	return &admin{
		key:             key,
		notFoundHandler: notFoundHandler,
	}
}

// middleware admits requests carrying the admin key in the X-Admin-Key
// header. Everything else gets the not-found handler, so the guarded route
// is indistinguishable from an unregistered one.
func (a *admin) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("X-Admin-Key"); subtle.ConstantTimeCompare([]byte(key), []byte(a.key)) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		a.notFoundHandler.ServeHTTP(w, r)
	})
}
