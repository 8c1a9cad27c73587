package cni

import (
	"os"

	"github.com/pkg/errors"
)

const (
	envCommand     = "CNI_COMMAND"
	envContainerID = "CNI_CONTAINERID"
	envNetns       = "CNI_NETNS"
	envIfName      = "CNI_IFNAME"
	envArgs        = "CNI_ARGS"
	envPath        = "CNI_PATH"
)

// ParseEnv reads and validates the EnvContract from spec §3 out of the
// process environment. CNI_NETNS and CNI_IFNAME are only required on ADD.
func ParseEnv(environ func(string) string) (*EnvContract, error) {
	env := &EnvContract{
		Command:     environ(envCommand),
		ContainerID: environ(envContainerID),
		Netns:       environ(envNetns),
		IfName:      environ(envIfName),
		RawArgs:     environ(envArgs),
		Path:        environ(envPath),
	}

	switch env.Command {
	case CommandAdd, CommandDel:
	default:
		return nil, errors.Errorf("missing or invalid CNI_COMMAND %q: must be ADD or DEL", env.Command)
	}
	if env.ContainerID == "" {
		return nil, errors.New("missing required environment variable CNI_CONTAINERID")
	}
	if env.Path == "" {
		return nil, errors.New("missing required environment variable CNI_PATH")
	}
	if env.Command == CommandAdd {
		if env.Netns == "" {
			return nil, errors.New("missing required environment variable CNI_NETNS")
		}
		if env.IfName == "" {
			return nil, errors.New("missing required environment variable CNI_IFNAME")
		}
	}

	env.Args = ParseCNIArgs(env.RawArgs)
	return env, nil
}

// OSEnviron is the production environ function, passed to ParseEnv.
func OSEnviron(key string) string {
	return os.Getenv(key)
}
