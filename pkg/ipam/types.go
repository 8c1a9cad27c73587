// Package ipam locates and invokes the external IPAM binary described in
// spec §4.2.
package ipam

import (
	"encoding/json"
	"net"
)

// Result is the opaque IPAM result document from spec §3's IPAMResult:
// the plugin reads .ip4.ip and forwards the rest verbatim.
type Result struct {
	Raw []byte `json:"-"`
	IP4 struct {
		IP string `json:"ip"`
	} `json:"ip4"`
}

// AssignedIP parses Result.IP4.IP into a net.IPNet, per spec §3's
// requirement that it be a well-formed IPv4 CIDR.
func (r *Result) AssignedIP() (net.IP, *net.IPNet, error) {
	return net.ParseCIDR(r.IP4.IP)
}

// parseResult decodes raw IPAM child stdout, keeping the raw bytes for
// verbatim forwarding on ADD success (spec §4.8).
func parseResult(raw []byte) (*Result, error) {
	r := &Result{Raw: raw}
	if err := json.Unmarshal(raw, r); err != nil {
		return nil, err
	}
	return r, nil
}
