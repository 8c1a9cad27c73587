// Package garp sends the gratuitous ARP announcement that lets the rest
// of the L2 segment learn a freshly provisioned endpoint's MAC
// immediately, instead of waiting on its first outbound packet.
package garp

import (
	"net"

	"github.com/mdlayher/arp"
	"github.com/mdlayher/ethernet"
	"github.com/pkg/errors"
)

// Announce sends a gratuitous ARP reply for ip/mac out of the host
// interface named hostIface, announcing that ip now lives behind mac.
func Announce(hostIface string, ip net.IP, mac net.HardwareAddr) error {
	iface, err := net.InterfaceByName(hostIface)
	if err != nil {
		return errors.Wrapf(err, "looking up interface %s for gratuitous ARP", hostIface)
	}

	client, err := arp.Dial(iface)
	if err != nil {
		return errors.Wrap(err, "opening ARP socket")
	}
	defer client.Close()

	packet, err := arp.NewPacket(arp.OperationReply, mac, ip, ethernet.Broadcast, ip)
	if err != nil {
		return errors.Wrap(err, "building gratuitous ARP packet")
	}

	if err := client.WriteTo(packet, ethernet.Broadcast); err != nil {
		return errors.Wrap(err, "sending gratuitous ARP")
	}
	return nil
}
