package provision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

func TestResolveNetNSPath_Absolute(t *testing.T) {
	got, err := ResolveNetNSPath("/var/run/netns/foo")
	require.NoError(t, err)
	assert.Equal(t, "/var/run/netns/foo", got)
}

func TestResolveNetNSPath_Relative(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveNetNSPath("ns/foo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "ns/foo"), got)
}

func TestHostVethName_Deterministic(t *testing.T) {
	key := datastore.Key{Hostname: "host1", OrchestratorID: "cni", WorkloadID: "container1"}
	a := HostVethName(key)
	b := HostVethName(key)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, len(a), 15)

	other := HostVethName(datastore.Key{Hostname: "host1", OrchestratorID: "cni", WorkloadID: "container2"})
	assert.NotEqual(t, a, other)
}

func TestRemoveVeth_MissingIsNotError(t *testing.T) {
	err := RemoveVeth("fab-definitely-not-there")
	assert.NoError(t, err)
}
