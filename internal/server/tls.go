package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/harrycraft44/rotnode/internal/ctxlog"
)

// tlsLoader serves the key pair from config and reloads it periodically, so
// certificate renewals take effect without a restart.
type tlsLoader struct {
	certFile string
	keyFile  string
	interval time.Duration

	cert atomic.Pointer[tls.Certificate]
}

func newTLSLoader(config TLSConfig) *tlsLoader {
	if config.CertFile == "" {
		panic("server: tls certFile is required")
	}
	if config.KeyFile == "" {
		panic("server: tls keyFile is required")
	}
	if config.ReloadInterval == 0 {
		panic("server: tls reloadInterval is required")
	}

	l := &tlsLoader{
		certFile: config.CertFile,
		keyFile:  config.KeyFile,
		interval: config.ReloadInterval,
	}

	err := l.load()
	if err != nil {
		panic(err)
	}

	return l
}

func (l *tlsLoader) load() error {
	c, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return fmt.Errorf("load tls cert %q: %w", l.certFile, err)
	}

	l.cert.Store(&c)
	return nil
}

func (l *tlsLoader) getCertificate(clientHello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	return l.cert.Load(), nil
}

func (l *tlsLoader) reloadLoop(ctx context.Context) {
	logger := ctxlog.Get(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			err := l.load()
			if err != nil {
				logger.Error("reload tls cert", "error", err)
			} else {
				logger.Info("reloaded tls cert")
			}
		}
	}
}
