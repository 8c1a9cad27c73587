package cni

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnviron(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseEnv_HappyAdd(t *testing.T) {
	env, err := ParseEnv(fakeEnviron(map[string]string{
		"CNI_COMMAND":     "ADD",
		"CNI_CONTAINERID": "abc",
		"CNI_NETNS":       "./ns1",
		"CNI_IFNAME":      "eth0",
		"CNI_ARGS":        "",
		"CNI_PATH":        "/opt/cni",
	}))
	require.NoError(t, err)
	assert.Equal(t, CommandAdd, env.Command)
	assert.Equal(t, "abc", env.ContainerID)
	assert.Empty(t, env.Args)
}

func TestParseEnv_DelDoesNotRequireNetnsOrIfname(t *testing.T) {
	env, err := ParseEnv(fakeEnviron(map[string]string{
		"CNI_COMMAND":     "DEL",
		"CNI_CONTAINERID": "abc",
		"CNI_PATH":        "/opt/cni",
	}))
	require.NoError(t, err)
	assert.Equal(t, CommandDel, env.Command)
}

func TestParseEnv_MissingCommand(t *testing.T) {
	_, err := ParseEnv(fakeEnviron(map[string]string{
		"CNI_CONTAINERID": "abc",
		"CNI_PATH":        "/opt/cni",
	}))
	assert.Error(t, err)
}

func TestParseEnv_AddMissingNetns(t *testing.T) {
	_, err := ParseEnv(fakeEnviron(map[string]string{
		"CNI_COMMAND":     "ADD",
		"CNI_CONTAINERID": "abc",
		"CNI_IFNAME":      "eth0",
		"CNI_PATH":        "/opt/cni",
	}))
	assert.Error(t, err)
}

func TestParseEnv_MissingPath(t *testing.T) {
	_, err := ParseEnv(fakeEnviron(map[string]string{
		"CNI_COMMAND":     "ADD",
		"CNI_CONTAINERID": "abc",
		"CNI_NETNS":       "./ns1",
		"CNI_IFNAME":      "eth0",
	}))
	assert.Error(t, err)
}
