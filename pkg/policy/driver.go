// Package policy implements the policy-driver axis of variant dispatch
// (spec §4.6): how the orchestrator attaches (and later detaches) a
// network profile to an endpoint, which differs depending on whether
// another controller already owns that reconciliation.
package policy

import (
	"context"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

// Driver attaches and detaches network profiles for an endpoint.
type Driver interface {
	SetProfile(ctx context.Context, ep *datastore.Endpoint, networkName string) error
	RemoveProfile(ctx context.Context, ep *datastore.Endpoint, networkName string) error
}
