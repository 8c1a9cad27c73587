package cni

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	cnitypes "github.com/containernetworking/cni/pkg/types"
	"github.com/pkg/errors"
)

// networkNameRE is the character class spec §3 requires for NetConf.Name.
// It is also exactly the class the PerNetwork policy driver re-validates
// in §4.6 before constructing itself.
var networkNameRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateNetworkName reports whether name meets the grammar in spec §3/§4.6.
func ValidateNetworkName(name string) error {
	if name == "" || !networkNameRE.MatchString(name) {
		return errors.Errorf("invalid network name %q: only letters, digits, '.', '_' and '-' are allowed", name)
	}
	return nil
}

// ParseNetworkConfig reads stdin to EOF, strips embedded newlines, and
// decodes the NetworkConfig JSON document, per spec §4.1.
func ParseNetworkConfig(stdin []byte) (*NetConf, error) {
	cleaned := bytes.ReplaceAll(stdin, []byte("\n"), []byte(""))

	conf := &NetConf{}
	if err := json.Unmarshal(cleaned, conf); err != nil {
		return nil, errors.Wrap(err, "failed to parse network configuration")
	}

	if conf.Name == "" {
		return nil, errors.New("network configuration is missing required field \"name\"")
	}
	if err := ValidateNetworkName(conf.Name); err != nil {
		return nil, err
	}
	if conf.IPAM.Type == "" {
		return nil, errors.New("network configuration is missing required field \"ipam.type\"")
	}

	return conf, nil
}

// DecodeK8sArgs extracts the Kubernetes pod identity from raw CNI_ARGS,
// tolerating its total absence (non-Kubernetes orchestrators never set it).
func DecodeK8sArgs(rawArgs string) (K8sArgs, error) {
	k8sArgs := K8sArgs{}
	if rawArgs == "" {
		return k8sArgs, nil
	}
	if err := cnitypes.LoadArgs(rawArgs, &k8sArgs); err != nil {
		return k8sArgs, errors.Wrap(err, "failed to decode CNI_ARGS as Kubernetes args")
	}
	return k8sArgs, nil
}

// String implements fmt.Stringer for logging.
func (c K8sArgs) String() string {
	return fmt.Sprintf("pod=%s/%s", c.K8S_POD_NAMESPACE, c.K8S_POD_NAME)
}
