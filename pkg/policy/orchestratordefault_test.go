package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

func TestOrchestratorDefault_NoSocketIsNoOp(t *testing.T) {
	ctx := context.Background()
	d, err := NewOrchestratorDefault(ctx, "")
	require.NoError(t, err)

	ep := &datastore.Endpoint{Hostname: "host1", OrchestratorID: "k8s", WorkloadID: "pod1"}
	assert.NoError(t, d.SetProfile(ctx, ep, "net1"))
	assert.NoError(t, d.RemoveProfile(ctx, ep, "net1"))
	assert.NoError(t, d.Close())
}
