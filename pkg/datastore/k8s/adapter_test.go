package k8s

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

func newFakeAdapter(t *testing.T, membership Membership) *Adapter {
	t.Helper()
	scheme := runtime.NewScheme()
	require.NoError(t, AddToScheme(scheme))
	c := fake.NewClientBuilder().WithScheme(scheme).Build()
	return New(c, "fabric-system", membership)
}

func TestCreateGetRemove(t *testing.T) {
	ctx := context.Background()
	a := newFakeAdapter(t, NewStaticMembership("host1"))

	_, cidr, err := net.ParseCIDR("10.0.0.5/24")
	require.NoError(t, err)

	ep, err := a.CreateEndpoint(ctx, "host1", "cni", "container1", []net.IPNet{*cidr})
	require.NoError(t, err)
	assert.Equal(t, "host1", ep.Hostname)

	got, err := a.GetEndpoint(ctx, ep.Key())
	require.NoError(t, err)
	assert.Equal(t, ep.WorkloadID, got.WorkloadID)
	require.Len(t, got.IPAddresses, 1)
	assert.Equal(t, "10.0.0.0/24", got.IPAddresses[0].String())

	require.NoError(t, a.RemoveWorkload(ctx, ep.Key()))
	_, err = a.GetEndpoint(ctx, ep.Key())
	assert.ErrorIs(t, err, datastore.ErrNotFound)
}

func TestCreateEndpoint_HostNotLive(t *testing.T) {
	a := newFakeAdapter(t, NewStaticMembership("other-host"))
	_, err := a.CreateEndpoint(context.Background(), "host1", "cni", "container1", nil)
	require.Error(t, err)
	var unavailable *datastore.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestGetEndpoint_NotFound(t *testing.T) {
	a := newFakeAdapter(t, nil)
	_, err := a.GetEndpoint(context.Background(), datastore.Key{Hostname: "h", OrchestratorID: "o", WorkloadID: "w"})
	assert.ErrorIs(t, err, datastore.ErrNotFound)
}

func TestSetEndpoint(t *testing.T) {
	ctx := context.Background()
	a := newFakeAdapter(t, NewStaticMembership("host1"))

	ep, err := a.CreateEndpoint(ctx, "host1", "cni", "container1", nil)
	require.NoError(t, err)

	ep.Name = "cali1234"
	ep.MAC = "aa:bb:cc:dd:ee:ff"
	require.NoError(t, a.SetEndpoint(ctx, ep))

	got, err := a.GetEndpoint(ctx, ep.Key())
	require.NoError(t, err)
	assert.Equal(t, "cali1234", got.Name)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", got.MAC)
}
