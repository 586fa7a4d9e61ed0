package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

type rateBucket struct {
	ticker  *time.Ticker
	tickets chan struct{}
}

// rateLimiter throttles clients by hashing the remote host into a fixed set
// of buckets. Each bucket admits one request per period and holds at most
// maxConcurrent waiters; requests beyond that are rejected immediately.
type rateLimiter struct {
	buckets         []rateBucket
	tooManyRequests http.Handler
}

func newRateLimiter(buckets int, period time.Duration, maxConcurrent int, tooManyRequests http.Handler) *rateLimiter {
	b := make([]rateBucket, buckets)
	for i := 0; i < buckets; i++ {
		b[i] = rateBucket{
			ticker:  time.NewTicker(period),
			tickets: make(chan struct{}, maxConcurrent),
		}
	}

	return &rateLimiter{
		buckets:         b,
		tooManyRequests: tooManyRequests,
	}
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bucket int
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			h := fnv.New64()
			io.WriteString(h, host)
			bucket = int(h.Sum64() % uint64(len(l.buckets)))
		}

		select {
		case l.buckets[bucket].tickets <- struct{}{}:
			// Deferred so the ticket comes back even when next panics
			// through to the recover middleware.
			defer func() { <-l.buckets[bucket].tickets }()
			<-l.buckets[bucket].ticker.C
			next.ServeHTTP(w, r)

		default:
			l.tooManyRequests.ServeHTTP(w, r)
		}
	})
}
