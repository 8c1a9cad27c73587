// Package conntrack flushes connection-tracking state for an endpoint's
// addresses on removal, best-effort, so stale NAT/conntrack entries don't
// outlive the interface that created them.
package conntrack

import (
	"net"

	"github.com/pkg/errors"
	"github.com/ti-mo/conntrack"
)

// Flush deletes every conntrack entry whose source or destination
// address falls within cidr. Failures to flush individual flows are
// tolerated; only a failure to dial or list conntrack at all is returned.
func Flush(cidr net.IPNet) error {
	conn, err := conntrack.Dial(nil)
	if err != nil {
		return errors.Wrap(err, "dialing conntrack")
	}
	defer conn.Close()

	flows, err := conn.Dump(nil)
	if err != nil {
		return errors.Wrap(err, "listing conntrack flows")
	}

	for _, flow := range flows {
		if cidr.Contains(flow.TupleOrig.IP.SourceAddress) || cidr.Contains(flow.TupleOrig.IP.DestinationAddress) {
			_ = conn.Delete(flow)
		}
	}
	return nil
}
