package engine

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDockerAware points a DockerAware probe at an httptest server by
// dialing its listener address instead of the real docker socket.
func newTestDockerAware(t *testing.T, handler http.Handler) *DockerAware {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d := NewDockerAware()
	d.httpClient.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
			var dialer net.Dialer
			return dialer.DialContext(ctx, network, srv.Listener.Addr().String())
		},
	}
	return d
}

func TestDockerAware_HostNetworking(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"HostConfig":{"NetworkMode":"host"}}`))
	})
	d := newTestDockerAware(t, handler)

	ok, err := d.UsesHostNetworking(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDockerAware_BridgeNetworking(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"HostConfig":{"NetworkMode":"bridge"}}`))
	})
	d := newTestDockerAware(t, handler)

	ok, err := d.UsesHostNetworking(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDockerAware_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	d := newTestDockerAware(t, handler)

	_, err := d.UsesHostNetworking(context.Background(), "missing")
	assert.Error(t, err)
}

func TestDefault_AlwaysFalse(t *testing.T) {
	ok, err := Default{}.UsesHostNetworking(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}
