package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	dir := t.TempDir()
	c := New()
	c.AddTotal.Inc()
	c.AddFailuresTotal.WithLabelValues("ipam_error").Inc()

	require.NoError(t, c.WriteTextfile(dir))

	content, err := os.ReadFile(filepath.Join(dir, "fabric-cni.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "fabric_cni_add_total 1")
	assert.Contains(t, string(content), `fabric_cni_add_failures_total{kind="ipam_error"} 1`)
}
