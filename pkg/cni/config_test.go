package cni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetworkConfig_Happy(t *testing.T) {
	conf, err := ParseNetworkConfig([]byte(`{"name":"net1","type":"x","ipam":{"type":"host-local"}}`))
	require.NoError(t, err)
	assert.Equal(t, "net1", conf.Name)
	assert.Equal(t, "host-local", conf.IPAM.Type)
}

func TestParseNetworkConfig_StripsEmbeddedNewlines(t *testing.T) {
	conf, err := ParseNetworkConfig([]byte("{\"name\":\"net1\",\n\"type\":\"x\",\n\"ipam\":{\"type\":\"host-local\"}}\n"))
	require.NoError(t, err)
	assert.Equal(t, "net1", conf.Name)
}

func TestParseNetworkConfig_InvalidJSON(t *testing.T) {
	_, err := ParseNetworkConfig([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseNetworkConfig_MissingName(t *testing.T) {
	_, err := ParseNetworkConfig([]byte(`{"type":"x","ipam":{"type":"host-local"}}`))
	assert.Error(t, err)
}

func TestParseNetworkConfig_MissingIPAMType(t *testing.T) {
	_, err := ParseNetworkConfig([]byte(`{"name":"net1","type":"x","ipam":{}}`))
	assert.Error(t, err)
}

func TestParseNetworkConfig_InvalidNameRejected(t *testing.T) {
	_, err := ParseNetworkConfig([]byte(`{"name":"bad/name","type":"x","ipam":{"type":"host-local"}}`))
	assert.Error(t, err)
}

func TestValidateNetworkName(t *testing.T) {
	assert.NoError(t, ValidateNetworkName("net1"))
	assert.NoError(t, ValidateNetworkName("net.1-2_3"))
	assert.Error(t, ValidateNetworkName("net/1"))
	assert.Error(t, ValidateNetworkName(""))
}

func TestDecodeK8sArgs_Empty(t *testing.T) {
	args, err := DecodeK8sArgs("")
	require.NoError(t, err)
	assert.Equal(t, "", string(args.K8S_POD_NAME))
}

func TestDecodeK8sArgs_Present(t *testing.T) {
	args, err := DecodeK8sArgs("K8S_POD_NAME=foo;K8S_POD_NAMESPACE=bar;IgnoreUnknown=1")
	require.NoError(t, err)
	assert.Equal(t, "foo", string(args.K8S_POD_NAME))
	assert.Equal(t, "bar", string(args.K8S_POD_NAMESPACE))
}
