// Package config loads the plugin's optional local daemon configuration
// file (spec §6 NEW): absence is not an error, and every field has a
// usable default.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is read from when the caller
// doesn't override it (e.g. for tests).
const DefaultPath = "/etc/fabric-cni/fabric-cni.yaml"

// Daemon is the local daemon configuration schema.
type Daemon struct {
	LogLevel             string   `yaml:"logLevel"`
	LogFile              string   `yaml:"logFile"`
	ExtraIPAMSearchPaths []string `yaml:"extraIpamSearchPaths"`
	HostnameOverride     string   `yaml:"hostnameOverride"`
	OrchestratorID       string   `yaml:"orchestratorID"`
	PolicySyncSocket     string   `yaml:"policySyncSocket"`
	NATEnabled           bool     `yaml:"natEnabled"`

	// DatastoreKind selects which datastore.Adapter backs the plugin:
	// "k8s" (default) or "fake" (a scratch, process-local store useful
	// for single-host/non-Kubernetes deployments and smoke testing).
	DatastoreKind      string `yaml:"datastoreKind"`
	DatastoreNamespace string `yaml:"datastoreNamespace"`
}

// DefaultOrchestratorID is used when the config file does not set one.
const DefaultOrchestratorID = "k8s"

// Load reads and parses path. A missing file yields a zero-value Daemon
// (all defaults) and no error, matching spec §6: "absence is not an error."
func Load(path string) (Daemon, error) {
	if path == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Daemon{}, nil
		}
		return Daemon{}, errors.Wrapf(err, "reading daemon config %s", path)
	}

	var cfg Daemon
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Daemon{}, errors.Wrapf(err, "parsing daemon config %s", path)
	}
	return cfg, nil
}
