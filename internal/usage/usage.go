// Package usage tracks how often each rotation operation is served, backed
// by a bbolt file.
package usage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/harrycraft44/rotnode/internal/rec"
)

type Config struct {
	File string `yaml:"file"`
}

var bucketOps = []byte("ops")

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("usage: already opened")
	}
	if config.File == "" {
		panic("usage: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("usage: create store dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("usage: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketOps)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketOps, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		panic(fmt.Errorf("usage: initialize buckets: %w", err))
	}
}

func Close() error {
	if db == nil {
		panic("usage: not opened")
	}

	err := db.Close()
	if err != nil {
		return fmt.Errorf("usage: close bbolt db: %w", err)
	}
	db = nil
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

// Stats is the persisted record for one operation.
type Stats struct {
	Count int64     `json:"count"`
	Last  time.Time `json:"last"`
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("usage: must: %w", err))
	}
	return v
}

// Record counts one served operation at the given time. Store failures,
// including recording against a closed store, come back as errors rather
// than panics so that serving can continue without them.
func Record(op string, at time.Time) (err error) {
	defer rec.Wrap(&err, "usage: record %q: %w", op)

	if db == nil {
		panic("usage: not opened")
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketOps)
		if b == nil {
			return fmt.Errorf("ops bucket not found")
		}

		var stats Stats
		if data := b.Get([]byte(op)); data != nil {
			err := json.Unmarshal(data, &stats)
			if err != nil {
				return fmt.Errorf("unmarshal stats: %w", err)
			}
		}

		stats.Count++
		if at.After(stats.Last) {
			stats.Last = at
		}

		return b.Put([]byte(op), must(json.Marshal(stats)))
	})
}

var errStop = fmt.Errorf("stop iteration")

// All iterates over the recorded operations in key order.
func All() iter.Seq2[string, Stats] {
	if db == nil {
		panic("usage: not opened")
	}

	return func(yield func(string, Stats) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketOps)
			if b == nil {
				return fmt.Errorf("usage: ops bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var stats Stats
				err := json.Unmarshal(v, &stats)
				if err != nil {
					return fmt.Errorf("usage: unmarshal stats for %q: %w", k, err)
				}

				if !yield(string(k), stats) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("usage: all ops: %w", err))
		}
	}
}
