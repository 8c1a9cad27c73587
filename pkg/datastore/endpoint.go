// Package datastore defines the capability the orchestrator consumes to
// CRUD workload endpoints in the fabric's cluster-wide store (spec §4.3).
// The datastore itself — its replication, consistency, and retry policy —
// is out of scope (spec §1); this package only describes the boundary.
package datastore

import (
	"context"
	"fmt"
	"net"
)

// Endpoint is the datastore entity from spec §3, keyed by
// (hostname, orchestrator_id, workload_id).
type Endpoint struct {
	Hostname       string
	OrchestratorID string
	WorkloadID     string

	// Name is the host-side veth interface name, assigned by the
	// provisioner and recorded back via SetEndpoint.
	Name string

	// MAC is the container-side interface's link-layer address, set
	// exactly once after veth provisioning.
	MAC string

	IPAddresses []net.IPNet

	// ProfileIDs tracks which policy profiles are attached, so
	// RemoveProfile can tell whether a profile is still referenced by
	// any other endpoint before deleting it (spec §4.6).
	ProfileIDs []string
}

// Key identifies an endpoint uniquely within the datastore.
type Key struct {
	Hostname       string
	OrchestratorID string
	WorkloadID     string
}

func (e *Endpoint) Key() Key {
	return Key{Hostname: e.Hostname, OrchestratorID: e.OrchestratorID, WorkloadID: e.WorkloadID}
}

// String renders Key in a deterministic, sortable form.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Hostname, k.OrchestratorID, k.WorkloadID)
}

// Adapter is the datastore capability consumed by the orchestrator, per
// spec §4.3. No retries are performed across this boundary by the core;
// retries, if any, are the concrete Adapter implementation's concern.
type Adapter interface {
	CreateEndpoint(ctx context.Context, hostname, orchestratorID, workloadID string, cidrs []net.IPNet) (*Endpoint, error)
	SetEndpoint(ctx context.Context, ep *Endpoint) error
	GetEndpoint(ctx context.Context, key Key) (*Endpoint, error)
	RemoveWorkload(ctx context.Context, key Key) error

	// EnsureProfile and DeleteProfileIfUnreferenced back the PerNetwork
	// policy driver's set_profile/remove_profile (spec §4.6): a profile
	// is a datastore-level entity independent of any single endpoint,
	// and is only deleted once no endpoint's ProfileIDs names it.
	EnsureProfile(ctx context.Context, name string) error
	DeleteProfileIfUnreferenced(ctx context.Context, name string) error
}

// Lister is an optional capability an Adapter may implement to support
// fabric-cnitool's list-endpoints command. The core orchestrator never
// lists, so it is kept off the Adapter interface proper.
type Lister interface {
	ListEndpoints(ctx context.Context) ([]*Endpoint, error)
}
