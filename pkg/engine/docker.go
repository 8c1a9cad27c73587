package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultDockerSocket = "/var/run/docker.sock"

// containerInspect is the slice of the Docker engine API's container
// inspect response this probe actually reads.
type containerInspect struct {
	HostConfig struct {
		NetworkMode string `json:"NetworkMode"`
	} `json:"HostConfig"`
}

// DockerAware queries a local Docker engine's inspect endpoint over its
// unix socket and reports true when the container's network mode is
// "host". The query mechanism is an implementation detail the orchestrator
// does not depend on; any future collaborator need only satisfy Probe.
type DockerAware struct {
	httpClient *http.Client
}

// NewDockerAware builds a DockerAware probe talking to the Docker engine
// over its default unix socket path.
func NewDockerAware() *DockerAware {
	return &DockerAware{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					d := net.Dialer{}
					return d.DialContext(ctx, "unix", defaultDockerSocket)
				},
			},
		},
	}
}

func (d *DockerAware) UsesHostNetworking(ctx context.Context, id string) (bool, error) {
	url := fmt.Sprintf("http://docker/containers/%s/json", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, errors.Wrap(err, "building docker inspect request")
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "querying docker engine")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, errors.Errorf("container %s not found by docker engine", id)
	}
	if resp.StatusCode != http.StatusOK {
		return false, errors.Errorf("docker engine returned status %d inspecting container %s", resp.StatusCode, id)
	}

	var inspect containerInspect
	if err := json.NewDecoder(resp.Body).Decode(&inspect); err != nil {
		return false, errors.Wrap(err, "decoding docker inspect response")
	}

	return inspect.HostConfig.NetworkMode == "host", nil
}
