package orchestrator

import (
	"context"
	"errors"
	"net"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"go.fabricnet.io/fabric-cni/pkg/cni"
	"go.fabricnet.io/fabric-cni/pkg/datastore"
	"go.fabricnet.io/fabric-cni/pkg/engine"
	"go.fabricnet.io/fabric-cni/pkg/ipam"
	"go.fabricnet.io/fabric-cni/pkg/policy"
	"go.fabricnet.io/fabric-cni/pkg/provision"
)

// Orchestrator composes the leaf components into the ADD/DELETE state
// machine from spec §4.7. Hostname and OrchestratorID are explicit
// startup parameters (spec §9: never ambient global state).
type Orchestrator struct {
	Hostname       string
	OrchestratorID string

	IPAM        ipam.Interface
	Store       datastore.Adapter
	Provisioner provision.Interface
	Engine      engine.Probe
	Policy      policy.Driver

	Log *logrus.Entry
}

// compensationStack is a LIFO of compensating actions, pushed as each
// ADD step commits. On failure, popping the back of the deque and
// running each action in turn reproduces the reverse-commit-order
// compensation the spec §4.7 tables specify — a direct, literal
// encoding rather than an ad hoc set of flags.
type compensationStack struct {
	dq  *deque.Deque
	log *logrus.Entry
}

func (s *compensationStack) push(name string, fn func() error) {
	s.dq.PushBack(compensationStep{name: name, fn: fn})
}

type compensationStep struct {
	name string
	fn   func() error
}

func (s *compensationStack) unwind() {
	for s.dq.Len() > 0 {
		step := s.dq.PopBack().(compensationStep)
		if err := step.fn(); err != nil {
			s.log.WithError(err).WithField("step", step.name).Warn("compensation step failed")
		}
	}
}

// Add implements the ADD path from spec §4.7.
func (o *Orchestrator) Add(ctx context.Context, env *cni.EnvContract, conf *cni.NetConf, stdin []byte) ([]byte, error) {
	hostNetworked, err := o.Engine.UsesHostNetworking(ctx, env.ContainerID)
	if err != nil {
		return nil, wrapf(err, "probing container engine for %s", env.ContainerID)
	}
	if hostNetworked {
		o.Log.WithField("containerID", env.ContainerID).Info("container uses host networking, nothing to do")
		return []byte{}, nil
	}

	stack := &compensationStack{dq: deque.New(), log: o.Log}

	// releaseUnusableAllocation handles the two boundary cases where the
	// IPAM child exited 0 and allocated an address, but returned a result
	// the orchestrator cannot use (missing ip4.ip, or a malformed CIDR):
	// the allocation already happened, so it must still be released even
	// though ADD is about to fail (spec §8).
	releaseUnusableAllocation := func() {
		if relErr := o.IPAM.Release(conf.IPAM.Type, stdin); relErr != nil {
			o.Log.WithError(relErr).Warn("releasing IPAM allocation for an unusable result failed")
		}
	}

	// Step 1: IPAssigned.
	result, err := o.IPAM.Assign(conf.IPAM.Type, env.Path, stdin)
	if err != nil {
		if result != nil {
			releaseUnusableAllocation()
		}
		return nil, classifyIPAMError(err)
	}
	_, cidr, err := result.AssignedIP()
	if err != nil {
		// Assign already validates this; defensive only.
		releaseUnusableAllocation()
		return nil, ipamError(err, 0)
	}
	stack.push("release IPAM allocation", func() error {
		return o.IPAM.Release(conf.IPAM.Type, stdin)
	})

	// Step 2: EndpointCreated.
	ep, err := o.Store.CreateEndpoint(ctx, o.Hostname, o.OrchestratorID, env.ContainerID, []net.IPNet{*cidr})
	if err != nil {
		stack.unwind()
		return nil, classifyDatastoreError(err)
	}
	stack.push("remove workload from datastore", func() error {
		return o.Store.RemoveWorkload(ctx, ep.Key())
	})

	// Step 3: VethProvisioned. remove_veth is idempotent, so pushing its
	// compensation before the attempt is safe and matches the table's
	// compensation set for both this step and the next failing.
	hostVethName := provision.HostVethName(ep.Key())
	stack.push("remove veth", func() error {
		return provision.RemoveVeth(hostVethName)
	})

	netnsPath, err := provision.ResolveNetNSPath(env.Netns)
	if err != nil {
		stack.unwind()
		return nil, envMissing(err)
	}

	mac, err := o.Provisioner.Provision(netnsPath, hostVethName, env.IfName, *cidr)
	if err != nil {
		stack.unwind()
		return nil, wrapf(err, "provisioning veth for %s", env.ContainerID)
	}
	ep.Name = hostVethName
	ep.MAC = mac
	if err := o.Store.SetEndpoint(ctx, ep); err != nil {
		stack.unwind()
		return nil, classifyDatastoreError(err)
	}

	// Step 4: ProfileSet.
	if err := o.Policy.SetProfile(ctx, ep, conf.Name); err != nil {
		stack.unwind()
		return nil, wrapf(err, "setting policy profile for %s", env.ContainerID)
	}

	// Step 5: Done.
	return result.Raw, nil
}

// Del implements the DELETE path from spec §4.7. It is tolerant: it
// proceeds past every non-catastrophic error so a partially-created
// container from a failed ADD can still be cleaned up.
func (o *Orchestrator) Del(ctx context.Context, env *cni.EnvContract, conf *cni.NetConf, stdin []byte) error {
	// Step 0: IPAM release, logged and ignored on failure.
	if err := o.IPAM.Release(conf.IPAM.Type, stdin); err != nil {
		o.Log.WithError(err).Warn("IPAM release failed during DELETE")
	}

	// Step 1: EndpointLookup.
	key := datastore.Key{Hostname: o.Hostname, OrchestratorID: o.OrchestratorID, WorkloadID: env.ContainerID}
	ep, err := o.Store.GetEndpoint(ctx, key)
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			o.Log.WithField("containerID", env.ContainerID).Info("no endpoint found for DELETE, nothing to do")
			return nil
		}
		if errors.Is(err, datastore.ErrAmbiguous) {
			return ambiguousEndpoint(err)
		}
		return classifyDatastoreError(err)
	}

	// Step 2: VethRemoved, idempotent, errors logged and ignored.
	if err := provision.RemoveVeth(ep.Name); err != nil {
		o.Log.WithError(err).WithField("iface", ep.Name).Warn("removing veth failed during DELETE")
	}

	// Step 3: EndpointRemoved, NotFound logged and ignored.
	if err := o.Store.RemoveWorkload(ctx, key); err != nil && !errors.Is(err, datastore.ErrNotFound) {
		o.Log.WithError(err).Warn("removing workload from datastore failed during DELETE")
	}

	// Step 4: ProfileRemoved, errors logged and ignored.
	if err := o.Policy.RemoveProfile(ctx, ep, conf.Name); err != nil {
		o.Log.WithError(err).Warn("removing policy profile failed during DELETE")
	}

	// Step 5: Done.
	return nil
}

func classifyIPAMError(err error) error {
	if nf, ok := err.(*ipam.NotFoundError); ok {
		return ipamNotFound(nf)
	}
	if ce, ok := err.(*ipam.ChildError); ok {
		return ipamError(ce, ce.ExitCode)
	}
	return ipamError(err, 0)
}

func classifyDatastoreError(err error) error {
	switch e := err.(type) {
	case *datastore.AddressFamilyUnsupportedError:
		return addressFamilyUnsupported(e)
	case *datastore.UnavailableError:
		return datastoreUnavailable(e)
	}
	if errors.Is(err, datastore.ErrAmbiguous) {
		return ambiguousEndpoint(err)
	}
	return datastoreUnavailable(err)
}
