package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// IdempotencyStore abstracts idempotency key storage.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (exists bool, existing []byte, err error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IdempotencyMiddleware replays stored responses for repeated mutation
// requests carrying the same Idempotency-Key header.
func IdempotencyMiddleware(store IdempotencyStore, ttl time.Duration, log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost && r.Method != http.MethodPut {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			exists, existing, err := store.CheckAndSet(r.Context(), key, nil, ttl)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency check failed, proceeding without")
				next.ServeHTTP(w, r)
				return
			}

			if exists {
				// A concurrent request may still be in flight. Replay only
				// completed responses.
				if string(existing) == "processing" {
					http.Error(w, "request already in progress", http.StatusConflict)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Idempotency-Replay", "true")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(existing)
				return
			}

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= 200 && rec.status < 300 {
				if err := store.Update(r.Context(), key, rec.body.Bytes(), ttl); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to store idempotent response")
				}
			}
		})
	}
}

// responseRecorder captures the response body so successful responses can be
// stored for replay.
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
