package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLimiterStore struct {
	counts map[string]int64
}

func newFakeLimiterStore() *fakeLimiterStore {
	return &fakeLimiterStore{counts: make(map[string]int64)}
}

func (f *fakeLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.counts[key]++
	return f.counts[key], nil
}

func postLogin(handler http.Handler, ip, username string) *httptest.ResponseRecorder {
	body := []byte(`{"username":"` + username + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.RemoteAddr = ip + ":51234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRateLimitBlocksPerUsername(t *testing.T) {
	store := newFakeLimiterStore()
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 2)
	handler := AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.1", "resident").Code)
	assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.2", "resident").Code)
	// Third attempt for the same name is throttled even from a new address.
	assert.Equal(t, http.StatusTooManyRequests, postLogin(handler, "10.0.0.3", "resident").Code)
	// A different name is unaffected.
	assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.3", "neighbor").Code)
}

func TestAuthRateLimitBlocksPerIP(t *testing.T) {
	store := newFakeLimiterStore()
	policy := NewAuthRateLimitPolicy("login", time.Minute, 2, 0)
	handler := AuthRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.9", "a").Code)
	assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.9", "b").Code)
	assert.Equal(t, http.StatusTooManyRequests, postLogin(handler, "10.0.0.9", "c").Code)
}

func TestAuthRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	handler := AuthRateLimit(NewAuthRateLimitPolicy("login", 0, 10, 10), newFakeLimiterStore(), nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, postLogin(handler, "10.0.0.1", "resident").Code)
	}
}
