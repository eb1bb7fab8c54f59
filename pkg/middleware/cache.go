package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrCacheMiss is returned by ResponseStore.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

// ResponseStore holds rendered JSON bodies keyed by request.
type ResponseStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Purge drops every entry under the store's prefix.
	Purge(ctx context.Context) error
	Key(r *http.Request) string
}

type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Key(r *http.Request) string {
	sum := sha256.Sum256([]byte(r.Method + " " + r.URL.Path + "?" + r.URL.Query().Encode()))
	return fmt.Sprintf("%s:%s", s.prefix, hex.EncodeToString(sum[:]))
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return body, err
}

func (s *RedisStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, body, ttl).Err()
}

func (s *RedisStore) Purge(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// cacheWriter tees the body so a 200 can be stored after the handler returns
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// Cache serves GET responses from store and fills it from successful ones.
// Store failures are logged and the request falls through to the handler.
func Cache(store ResponseStore, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := store.Key(r)
			body, err := store.Get(r.Context(), key)
			switch {
			case err == nil:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			case !errors.Is(err, ErrCacheMiss):
				logger.Warn("Response cache read failed", zap.Error(err), zap.String("path", r.URL.Path))
			}

			w.Header().Set("X-Cache", "MISS")
			cw := &cacheWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK {
				return
			}
			if err := store.Set(r.Context(), key, cw.buf.Bytes(), ttl); err != nil {
				logger.Warn("Response cache write failed", zap.Error(err), zap.String("path", r.URL.Path))
			}
		})
	}
}

// PurgeOnWrite empties the store after any successful non-GET request.
func PurgeOnWrite(store ResponseStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			if r.Method == http.MethodGet || rw.statusCode >= http.StatusBadRequest {
				return
			}
			if err := store.Purge(r.Context()); err != nil {
				logger.Warn("Response cache purge failed", zap.Error(err))
			}
		})
	}
}
