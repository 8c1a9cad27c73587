// Package cni parses the CNI environment contract and network configuration
// document that every plugin invocation receives.
package cni

import (
	cnitypes "github.com/containernetworking/cni/pkg/types"
)

// IPAMConfig is the "ipam" stanza of the network configuration document.
// Only the fields the orchestrator needs are modeled; unknown IPAM-specific
// fields are dropped here, and the IPAM binary receives the original
// stdin bytes instead of a re-encoding of this struct.
type IPAMConfig struct {
	Type string `json:"type"`
}

// NetConf is the NetworkConfig document described in spec §3. It embeds
// cnitypes.NetConf so the plugin interoperates with the standard CNI
// version-negotiation and prevResult machinery the same way every consumer
// of containernetworking/cni does.
type NetConf struct {
	cnitypes.NetConf

	IPAM IPAMConfig `json:"ipam"`

	// PolicySyncSocket points the OrchestratorDefault policy driver (which
	// is selected by K8S_POD_NAME in CNI_ARGS, not by this field) at a
	// local policy-sync gRPC endpoint, taking precedence over the daemon
	// config's socket. With neither set, OrchestratorDefault has no client
	// and is a no-op.
	PolicySyncSocket string `json:"policySyncSocket,omitempty"`

	// MTU is decoded from the network configuration but not passed to the
	// provisioner, which always uses its fixed default MTU of 1500.
	MTU int `json:"mtu,omitempty"`
}

// K8sArgs is the typed projection of the two Kubernetes-relevant CNI_ARGS
// keys. It mirrors the shape used throughout the example pack's own
// CNI_ARGS decoders (cnitypes.UnmarshallableString backed struct tags).
type K8sArgs struct {
	cnitypes.CommonArgs
	K8S_POD_NAME      cnitypes.UnmarshallableString
	K8S_POD_NAMESPACE cnitypes.UnmarshallableString
}

// EnvContract is the parsed process environment described in spec §3.
type EnvContract struct {
	Command     string
	ContainerID string
	Netns       string
	IfName      string
	RawArgs     string
	Args        map[string]string
	Path        string
}

const (
	CommandAdd = "ADD"
	CommandDel = "DEL"
)
