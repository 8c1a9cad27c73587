package ipam

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	pluginsipam "github.com/containernetworking/plugins/pkg/ipam"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NotFoundError is returned by Locate when no executable matching
// the requested IPAM type exists anywhere on CNI_PATH.
type NotFoundError struct {
	Type string
	Path string
}

func (e *NotFoundError) Error() string {
	return "no IPAM plugin of type " + e.Type + " found on CNI_PATH " + e.Path
}

// ChildError wraps an IPAM child process failure, retaining its exit code
// so the orchestrator can propagate it per spec §6/§7.
type ChildError struct {
	ExitCode int
	Stderr   string
	cause    error
}

func (e *ChildError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return "IPAM plugin exited with a non-zero status"
}

func (e *ChildError) Unwrap() error { return e.cause }

// Interface is the IPAM sub-protocol capability the orchestrator consumes.
// *Client is the only production implementation; tests substitute a fake
// to exercise the ADD/DELETE state machine without spawning a child
// process.
type Interface interface {
	Assign(ipamType string, cniPath string, stdinData []byte) (*Result, error)
	Release(ipamType string, stdinData []byte) error
}

// Client is the IPAM sub-protocol client from spec §4.2.
type Client struct {
	log *logrus.Entry
}

// NewClient constructs an IPAM Client.
func NewClient(log *logrus.Entry) *Client {
	return &Client{log: log}
}

// Locate implements spec §4.2's binary search algorithm: split CNI_PATH on
// ':', probe <dir>/<ipam.type> in order, return the first regular file.
func Locate(ipamType, cniPath string) (string, error) {
	for _, dir := range filepath.SplitList(cniPath) {
		candidate := filepath.Join(dir, ipamType)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", &NotFoundError{Type: ipamType, Path: cniPath}
}

// Assign runs the IPAM binary found by Locate with the process's own
// environment and stdinData on its stdin. On success it returns the parsed
// Result, whose Raw field holds the child's stdout bytes unchanged for
// verbatim stdout forwarding; the assigned CIDR is read from it with
// Result.AssignedIP.
//
// If the child never ran or exited non-zero, nothing was allocated and
// Assign returns a nil Result: there is nothing for the caller to
// compensate (spec §4.7 step 1 "none"). But if the child exited 0 and
// still returned an unusable document (missing ip4.ip, or a malformed
// CIDR), the child has already allocated an address — Assign returns the
// parsed Result alongside the error so the caller can release it (spec
// §8: "IPAM release is attempted" for both boundary cases).
func (c *Client) Assign(ipamType string, cniPath string, stdinData []byte) (*Result, error) {
	path, err := Locate(ipamType, cniPath)
	if err != nil {
		return nil, err
	}

	c.log.WithField("ipamType", ipamType).Info("invoking IPAM plugin for ADD")
	cmd := exec.Command(path)
	cmd.Stdin = bytes.NewReader(stdinData)
	stdout, err := cmd.Output()
	if err != nil {
		return nil, classifyExecError(err)
	}

	result, err := parseResult(stdout)
	if err != nil {
		return nil, errors.Wrap(err, "IPAM plugin returned invalid JSON")
	}
	if result.IP4.IP == "" {
		return result, errors.New("IPAM plugin did not return an ip4.ip field")
	}
	if _, _, err := result.AssignedIP(); err != nil {
		return result, errors.Wrapf(err, "IPAM plugin returned malformed CIDR %q", result.IP4.IP)
	}

	return result, nil
}

// Release invokes the IPAM binary's DEL sub-command. Per spec §4.2/§7, a
// release failure is never fatal: callers (both the DELETE path and ADD
// compensation) log it and continue.
func (c *Client) Release(ipamType string, stdinData []byte) error {
	c.log.WithField("ipamType", ipamType).Info("invoking IPAM plugin for release")
	if err := pluginsipam.ExecDel(ipamType, stdinData); err != nil {
		return classifyExecError(err)
	}
	return nil
}

func classifyExecError(err error) error {
	if exitErr, ok := errors.Cause(err).(*exec.ExitError); ok {
		return &ChildError{ExitCode: exitErr.ExitCode(), Stderr: string(exitErr.Stderr), cause: err}
	}
	return &ChildError{ExitCode: 1, cause: err}
}
