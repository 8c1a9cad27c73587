// Package natrules installs and removes the host-side masquerade rule
// that lets a fabric endpoint reach addresses outside the overlay.
package natrules

import (
	"net"

	"github.com/coreos/go-iptables/iptables"
	"github.com/pkg/errors"
)

const (
	table      = "nat"
	chain      = "FABRIC-CNI-MASQ"
	natParent  = "POSTROUTING"
	commentTag = "fabric-cni: masquerade for endpoint"
)

// Installer manages the fabric's masquerade chain.
type Installer struct {
	ipt *iptables.IPTables
}

// New constructs an Installer, or reports that iptables isn't usable on
// this host.
func New() (*Installer, error) {
	ipt, err := iptables.New()
	if err != nil {
		return nil, errors.Wrap(err, "initializing iptables")
	}
	return &Installer{ipt: ipt}, nil
}

// EnsureChain makes sure the fabric's masquerade chain exists and is
// jumped to from POSTROUTING. It is idempotent.
func (n *Installer) EnsureChain() error {
	exists, err := n.ipt.ChainExists(table, chain)
	if err != nil {
		return errors.Wrap(err, "checking masquerade chain")
	}
	if !exists {
		if err := n.ipt.NewChain(table, chain); err != nil {
			return errors.Wrap(err, "creating masquerade chain")
		}
	}
	if err := n.ipt.AppendUnique(table, natParent, "-j", chain); err != nil {
		return errors.Wrap(err, "jumping to masquerade chain from POSTROUTING")
	}
	return nil
}

// Add installs a masquerade rule for traffic sourced from cidr leaving
// this host, tagged with the endpoint's name so Remove can find it again.
func (n *Installer) Add(cidr net.IPNet, endpointName string) error {
	if err := n.EnsureChain(); err != nil {
		return err
	}
	rule := []string{
		"-s", cidr.String(),
		"-m", "comment", "--comment", commentTag + " " + endpointName,
		"-j", "MASQUERADE",
	}
	if err := n.ipt.AppendUnique(table, chain, rule...); err != nil {
		return errors.Wrapf(err, "installing masquerade rule for %s", cidr.String())
	}
	return nil
}

// Remove deletes the masquerade rule for cidr. It is idempotent: a
// missing rule is not an error.
func (n *Installer) Remove(cidr net.IPNet, endpointName string) error {
	rule := []string{
		"-s", cidr.String(),
		"-m", "comment", "--comment", commentTag + " " + endpointName,
		"-j", "MASQUERADE",
	}
	if err := n.ipt.Delete(table, chain, rule...); err != nil {
		if isNotExistError(err) {
			return nil
		}
		return errors.Wrapf(err, "removing masquerade rule for %s", cidr.String())
	}
	return nil
}

func isNotExistError(err error) bool {
	e, ok := err.(*iptables.Error)
	return ok && e.IsNotExist()
}
