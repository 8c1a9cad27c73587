// Package provision implements the namespace/veth provisioning protocol
// (spec §4.4): creating the veth pair that puts a workload on the
// fabric, and its idempotent teardown counterpart.
package provision

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/containernetworking/plugins/pkg/ip"
	"github.com/containernetworking/plugins/pkg/ns"
	"github.com/pkg/errors"
	"github.com/vishvananda/netlink"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

const defaultMTU = 1500

// Interface is the veth-provisioning capability the orchestrator
// consumes. *Provisioner is the only production implementation; tests
// substitute a fake to exercise the ADD state machine without a real
// network namespace.
type Interface interface {
	Provision(netnsPath, hostVethName, ifName string, cidr net.IPNet) (mac string, err error)
}

// Provisioner creates and tears down the veth pair connecting a
// container namespace to the fabric.
type Provisioner struct {
	mtu int
}

// New constructs a Provisioner using the fabric's default MTU.
func New() *Provisioner {
	return &Provisioner{mtu: defaultMTU}
}

// ResolveNetNSPath joins a relative netns path against the process's
// current working directory, per spec §4.4. CNI_NETNS is not
// pre-validated for existence here; whatever ns.GetNS returns on an
// absent or malformed path is returned from Provision, wrapped with the
// path.
func ResolveNetNSPath(nsPath string) (string, error) {
	if filepath.IsAbs(nsPath) {
		return nsPath, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolving working directory for relative netns path")
	}
	return filepath.Join(cwd, nsPath), nil
}

// HostVethName derives the host-side veth name deterministically from an
// endpoint key: "fab" plus 8 hex digits of a hash, 11 bytes, which fits
// Linux's IFNAMSIZ (15 bytes plus the terminator). The derivation itself
// is opaque to callers; only
// determinism is load-bearing.
func HostVethName(key datastore.Key) string {
	const prefix = "fab"
	h := fnv32a(key.String())
	return fmt.Sprintf("%s%08x", prefix, h)
}

func fnv32a(s string) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	hash := uint32(offset32)
	for i := 0; i < len(s); i++ {
		hash ^= uint32(s[i])
		hash *= prime32
	}
	return hash
}

// Provision creates a veth pair, leaves the host-side end named
// hostVethName in the caller's namespace, moves the peer into the
// namespace at netnsPath and renames it to ifName, assigns cidr to it,
// and brings it up. It returns the container-side interface's
// link-layer address, to be written back via datastore.Adapter.SetEndpoint.
func (p *Provisioner) Provision(netnsPath, hostVethName, ifName string, cidr net.IPNet) (mac string, err error) {
	containerNS, err := ns.GetNS(netnsPath)
	if err != nil {
		return "", errors.Wrapf(err, "opening container network namespace %s", netnsPath)
	}
	defer containerNS.Close()

	var containerMAC string
	err = containerNS.Do(func(hostNS ns.NetNS) error {
		_, contVeth, err := ip.SetupVethWithName(ifName, hostVethName, p.mtu, "", hostNS)
		if err != nil {
			return errors.Wrap(err, "creating veth pair")
		}

		link, err := netlink.LinkByName(ifName)
		if err != nil {
			return errors.Wrapf(err, "looking up container interface %s", ifName)
		}

		addr := &netlink.Addr{IPNet: &cidr}
		if err := netlink.AddrAdd(link, addr); err != nil {
			return errors.Wrapf(err, "assigning address %s to %s", cidr.String(), ifName)
		}
		if err := netlink.LinkSetUp(link); err != nil {
			return errors.Wrapf(err, "bringing up container interface %s", ifName)
		}

		containerMAC = contVeth.HardwareAddr.String()
		return nil
	})
	if err != nil {
		return "", err
	}

	if hostLink, lookupErr := netlink.LinkByName(hostVethName); lookupErr == nil {
		_ = netlink.LinkSetUp(hostLink)
	}

	return containerMAC, nil
}

// RemoveVeth deletes the host-side end of the veth pair. It is
// idempotent: a missing interface is not an error.
func RemoveVeth(hostVethName string) error {
	link, err := netlink.LinkByName(hostVethName)
	if err != nil {
		if _, ok := err.(netlink.LinkNotFoundError); ok {
			return nil
		}
		return errors.Wrapf(err, "looking up host interface %s", hostVethName)
	}
	if err := netlink.LinkDel(link); err != nil {
		return errors.Wrapf(err, "deleting host interface %s", hostVethName)
	}
	return nil
}
