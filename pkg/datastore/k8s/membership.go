package k8s

import (
	"github.com/hashicorp/memberlist"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Membership reports which fabric hosts are currently alive. CreateEndpoint
// consults it before admitting a new workload so a host that has fallen out
// of the fabric's gossip ring fails fast instead of writing an endpoint no
// peer will ever route to (spec §2 item 14).
type Membership interface {
	AliveNodes() sets.Set[string]
}

type memberlistMembership struct {
	ml *memberlist.Memberlist
}

// NewMemberlistMembership adapts a running *memberlist.Memberlist, such as
// one joined to the fabric's gossip ring at daemon startup, to Membership.
func NewMemberlistMembership(ml *memberlist.Memberlist) Membership {
	return &memberlistMembership{ml: ml}
}

func (m *memberlistMembership) AliveNodes() sets.Set[string] {
	alive := sets.New[string]()
	for _, n := range m.ml.Members() {
		if n.State == memberlist.StateAlive {
			alive.Insert(n.Name)
		}
	}
	return alive
}

// staticMembership is a fixed membership view, useful for single-host
// deployments and tests that don't run a gossip ring.
type staticMembership struct {
	alive sets.Set[string]
}

func NewStaticMembership(hosts ...string) Membership {
	return &staticMembership{alive: sets.New(hosts...)}
}

func (m *staticMembership) AliveNodes() sets.Set[string] {
	return m.alive
}
