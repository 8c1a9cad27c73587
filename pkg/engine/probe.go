// Package engine implements the container-engine probe axis of variant
// dispatch (spec §4.5): the single question the orchestrator asks before
// doing any networking work at all — does this container already have
// host networking, in which case there is nothing for the plugin to do.
package engine

import (
	"context"
)

// Probe answers whether a container identified by id uses host
// networking. The orchestrator's ADD path short-circuits to an empty,
// successful result when this returns true (spec §4.7 state 0).
type Probe interface {
	UsesHostNetworking(ctx context.Context, id string) (bool, error)
}

// Default never queries anything and always reports false, matching a
// plugin deployment with no container-engine collaborator to ask.
type Default struct{}

func (Default) UsesHostNetworking(context.Context, string) (bool, error) {
	return false, nil
}
