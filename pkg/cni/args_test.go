package cni

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCNIArgs_Empty(t *testing.T) {
	args := ParseCNIArgs("")
	assert.Empty(t, args)
}

func TestParseCNIArgs_Basic(t *testing.T) {
	args := ParseCNIArgs("K8S_POD_NAME=foo;K8S_POD_NAMESPACE=bar")
	assert.Equal(t, map[string]string{
		"K8S_POD_NAME":      "foo",
		"K8S_POD_NAMESPACE": "bar",
	}, args)
}

func TestParseCNIArgs_DuplicateKeyLastWriteWins(t *testing.T) {
	args := ParseCNIArgs("FOO=first;FOO=second")
	assert.Equal(t, "second", args["FOO"])
}

func TestParseCNIArgs_SkipsUnparseableFragments(t *testing.T) {
	args := ParseCNIArgs("GOOD=ok;;===;ANOTHER=value")
	assert.Equal(t, "ok", args["GOOD"])
	assert.Equal(t, "value", args["ANOTHER"])
}

func TestParseCNIArgs_K8sPodNameSelectsVariants(t *testing.T) {
	args := ParseCNIArgs("K8S_POD_NAME=foo")
	_, ok := args["K8S_POD_NAME"]
	assert.True(t, ok)
}
