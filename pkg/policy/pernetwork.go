package policy

import (
	"context"

	"go.fabricnet.io/fabric-cni/pkg/cni"
	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

// PerNetwork is the Driver variant used when no orchestrator owns policy
// reconciliation: each network name gets its own datastore profile,
// attached to every endpoint on that network and deleted once the last
// endpoint referencing it is gone (spec §4.6).
type PerNetwork struct {
	store datastore.Adapter
}

// NewPerNetwork validates networkName against the same grammar the
// network configuration itself must satisfy and constructs a PerNetwork
// driver, or fails with an InvalidNetworkNameError.
func NewPerNetwork(store datastore.Adapter, networkName string) (*PerNetwork, error) {
	if err := cni.ValidateNetworkName(networkName); err != nil {
		return nil, NewInvalidNetworkNameError(err)
	}
	return &PerNetwork{store: store}, nil
}

func (p *PerNetwork) SetProfile(ctx context.Context, ep *datastore.Endpoint, networkName string) error {
	if err := p.store.EnsureProfile(ctx, networkName); err != nil {
		return err
	}

	for _, existing := range ep.ProfileIDs {
		if existing == networkName {
			return nil
		}
	}
	ep.ProfileIDs = append(ep.ProfileIDs, networkName)
	return p.store.SetEndpoint(ctx, ep)
}

func (p *PerNetwork) RemoveProfile(ctx context.Context, ep *datastore.Endpoint, networkName string) error {
	kept := ep.ProfileIDs[:0]
	for _, existing := range ep.ProfileIDs {
		if existing != networkName {
			kept = append(kept, existing)
		}
	}
	ep.ProfileIDs = kept

	return p.store.DeleteProfileIfUnreferenced(ctx, networkName)
}
