package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fabricnet.io/fabric-cni/pkg/datastore/fake"
)

func TestNewPerNetwork_InvalidName(t *testing.T) {
	_, err := NewPerNetwork(fake.New(), "bad/name")
	require.Error(t, err)
	var invalid *InvalidNetworkNameError
	assert.ErrorAs(t, err, &invalid)
}

func TestPerNetwork_SetAndRemoveProfile(t *testing.T) {
	ctx := context.Background()
	store := fake.New()
	driver, err := NewPerNetwork(store, "net1")
	require.NoError(t, err)

	ep, err := store.CreateEndpoint(ctx, "host1", "cni", "container1", nil)
	require.NoError(t, err)

	require.NoError(t, driver.SetProfile(ctx, ep, "net1"))
	assert.Contains(t, ep.ProfileIDs, "net1")

	require.NoError(t, driver.RemoveProfile(ctx, ep, "net1"))
	assert.NotContains(t, ep.ProfileIDs, "net1")
}

func TestPerNetwork_SetProfile_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := fake.New()
	driver, err := NewPerNetwork(store, "net1")
	require.NoError(t, err)

	ep, err := store.CreateEndpoint(ctx, "host1", "cni", "container1", nil)
	require.NoError(t, err)

	require.NoError(t, driver.SetProfile(ctx, ep, "net1"))
	require.NoError(t, driver.SetProfile(ctx, ep, "net1"))
	assert.Len(t, ep.ProfileIDs, 1)
}
