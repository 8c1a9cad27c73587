// Package fake is an in-memory datastore.Adapter used by tests and by
// fabric-cnitool against a local scratch store. Endpoints are indexed in a
// google/btree.BTree keyed by Key so iteration (used by fabric-cnitool's
// list-endpoints command) is always in deterministic, sorted order instead
// of Go's randomized map order.
package fake

import (
	"context"
	"net"
	"sync"

	"github.com/google/btree"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

type item struct {
	key datastore.Key
	ep  *datastore.Endpoint
}

func (i item) Less(than btree.Item) bool {
	return i.key.String() < than.(item).key.String()
}

// Adapter is a thread-safe, in-memory datastore.Adapter.
type Adapter struct {
	mu       sync.Mutex
	tree     *btree.BTree
	profiles map[string]struct{}
}

// New constructs an empty fake Adapter.
func New() *Adapter {
	return &Adapter{tree: btree.New(8), profiles: make(map[string]struct{})}
}

func (a *Adapter) CreateEndpoint(_ context.Context, hostname, orchestratorID, workloadID string, cidrs []net.IPNet) (*datastore.Endpoint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := datastore.Key{Hostname: hostname, OrchestratorID: orchestratorID, WorkloadID: workloadID}
	ep := &datastore.Endpoint{
		Hostname:       hostname,
		OrchestratorID: orchestratorID,
		WorkloadID:     workloadID,
		IPAddresses:    cidrs,
	}
	a.tree.ReplaceOrInsert(item{key: key, ep: ep})
	return ep, nil
}

func (a *Adapter) SetEndpoint(_ context.Context, ep *datastore.Endpoint) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tree.ReplaceOrInsert(item{key: ep.Key(), ep: ep})
	return nil
}

func (a *Adapter) GetEndpoint(_ context.Context, key datastore.Key) (*datastore.Endpoint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	found := a.tree.Get(item{key: key})
	if found == nil {
		return nil, datastore.ErrNotFound
	}
	return found.(item).ep, nil
}

func (a *Adapter) RemoveWorkload(_ context.Context, key datastore.Key) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	removed := a.tree.Delete(item{key: key})
	if removed == nil {
		return datastore.ErrNotFound
	}
	return nil
}

// List returns every endpoint in deterministic key order, used by
// fabric-cnitool's list-endpoints diagnostic command.
func (a *Adapter) List() []*datastore.Endpoint {
	a.mu.Lock()
	defer a.mu.Unlock()

	eps := make([]*datastore.Endpoint, 0, a.tree.Len())
	a.tree.Ascend(func(i btree.Item) bool {
		eps = append(eps, i.(item).ep)
		return true
	})
	return eps
}

// ListEndpoints is List with the context.Context parameter the k8s
// Adapter needs, so fabric-cnitool can address either backend through a
// single datastore.Lister interface.
func (a *Adapter) ListEndpoints(_ context.Context) ([]*datastore.Endpoint, error) {
	return a.List(), nil
}

func (a *Adapter) EnsureProfile(_ context.Context, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.profiles[name] = struct{}{}
	return nil
}

func (a *Adapter) DeleteProfileIfUnreferenced(_ context.Context, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	referenced := false
	a.tree.Ascend(func(i btree.Item) bool {
		for _, p := range i.(item).ep.ProfileIDs {
			if p == name {
				referenced = true
				return false
			}
		}
		return true
	})
	if !referenced {
		delete(a.profiles, name)
	}
	return nil
}
