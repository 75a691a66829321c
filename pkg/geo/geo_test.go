package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gerenciaroi/pkg/clients"
)

type memCache struct {
	mu     sync.Mutex
	items  map[string]Location
	getErr error
}

func (c *memCache) Get(_ context.Context, ip string) (*Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	loc, ok := c.items[ip]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (c *memCache) Set(_ context.Context, ip string, loc Location, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[ip] = loc
	return nil
}

func newServer(t *testing.T, hits *int, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLocator_Lookup(t *testing.T) {
	hits := 0
	srv := newServer(t, &hits, `{"status":"success","country":"Brazil","regionName":"Sao Paulo","city":"Campinas"}`, http.StatusOK)
	cache := &memCache{items: map[string]Location{}}
	l := New(srv.URL, clients.NewHTTPClient(), cache)

	loc, err := l.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, Location{Country: "Brazil", Region: "Sao Paulo", City: "Campinas"}, loc)

	loc, err = l.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, "Campinas", loc.City)
	assert.Equal(t, 1, hits, "second lookup must be served from cache")
}

func TestLocator_LookupSkipsUnroutable(t *testing.T) {
	hits := 0
	srv := newServer(t, &hits, `{}`, http.StatusOK)
	l := New(srv.URL, clients.NewHTTPClient(), nil)

	for _, ip := range []string{"", "not-an-ip", "127.0.0.1", "10.1.2.3", "192.168.0.10", "::1"} {
		loc, err := l.Lookup(context.Background(), ip)
		assert.NoError(t, err)
		assert.Equal(t, Location{}, loc)
	}
	assert.Equal(t, 0, hits)
}

func TestLocator_LookupFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "Upstream error status", body: `oops`, status: http.StatusInternalServerError},
		{name: "Fail status", body: `{"status":"fail","message":"reserved range"}`, status: http.StatusOK},
		{name: "Bad json", body: `{`, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := 0
			srv := newServer(t, &hits, tt.body, tt.status)
			l := New(srv.URL, clients.NewHTTPClient(), nil)

			_, err := l.Lookup(context.Background(), "1.1.1.1")
			assert.ErrorIs(t, err, ErrLookupFailed)
		})
	}
}

func TestLocator_CacheReadErrorFallsThrough(t *testing.T) {
	hits := 0
	srv := newServer(t, &hits, `{"status":"success","country":"Portugal"}`, http.StatusOK)
	l := New(srv.URL, clients.NewHTTPClient(), &memCache{items: map[string]Location{}, getErr: errors.New("redis down")})

	loc, err := l.Lookup(context.Background(), "1.1.1.1")
	require.NoError(t, err)
	assert.Equal(t, "Portugal", loc.Country)
	assert.Equal(t, 1, hits)
}

func TestConnect(t *testing.T) {
	c, err := Connect(context.Background(), "redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Options().DB)

	c, err = Connect(context.Background(), "localhost:6380")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", c.Options().Addr)

	_, err = Connect(context.Background(), "redis://:bad:url")
	assert.Error(t, err)
}
