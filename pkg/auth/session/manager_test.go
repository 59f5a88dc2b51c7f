package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "test:session:access:" + accessID
}

func newTestManager(store sessionStore) *Manager {
	return &Manager{
		store: store,
		keyer: fakeKeyer{},
		ttl:   24 * time.Hour,
	}
}

func TestGenerateStoresRefreshToken(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	token, err := manager.Generate(context.Background(), "access-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, store.values["test:session:access:access-1"])
	assert.Equal(t, 24*time.Hour, store.ttls["test:session:access:access-1"])

	_, err = manager.Generate(context.Background(), "  ")
	assert.Error(t, err)
}

func TestHasSessionReflectsStoreState(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	ok, err := manager.HasSession(context.Background(), "access-1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = manager.Generate(context.Background(), "access-1")
	require.NoError(t, err)

	ok, err = manager.HasSession(context.Background(), "access-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRevokeIsIdempotent(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	_, err := manager.Generate(context.Background(), "access-1")
	require.NoError(t, err)

	require.NoError(t, manager.Revoke(context.Background(), "access-1"))
	require.NoError(t, manager.Revoke(context.Background(), "access-1"))

	ok, err := manager.HasSession(context.Background(), "access-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewAccessIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewAccessID(), NewAccessID())
}
