package cni

import "regexp"

// cniArgPairRE implements the CNI_ARGS grammar from spec §3:
// (KEY=VALUE)(;KEY=VALUE)* where KEY/VALUE each match [A-Za-z0-9/._\- ]+.
// Fragments that don't match are silently skipped (lenient), matching the
// original calico-cni parser this behavior is grounded on.
var cniArgPairRE = regexp.MustCompile(`([A-Za-z0-9/._\- ]+)=([A-Za-z0-9/._\- ]+)(?:;|$)`)

// ParseCNIArgs parses the CNI_ARGS environment variable into a string map.
//
// Duplicate keys: last-write-wins. This is the documented resolution of the
// spec §9 open question; a single left-to-right scan overwriting the map
// entry on every match gives last-write-wins for free without any extra
// bookkeeping.
func ParseCNIArgs(raw string) map[string]string {
	args := make(map[string]string)
	if raw == "" {
		return args
	}
	for _, match := range cniArgPairRE.FindAllStringSubmatch(raw, -1) {
		args[match[1]] = match[2]
	}
	return args
}
