package policy

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
	"go.fabricnet.io/fabric-cni/pkg/policy/policysyncpb"
)

// OrchestratorDefault is the Driver variant selected when K8S_POD_NAME is
// present in CNI_ARGS (spec §4.6): profile reconciliation is owned by
// another controller, so set_profile/remove_profile are no-ops on the
// datastore, same as spec.md specifies. When a policy-sync socket is
// configured, the endpoint's existence is still signalled to that
// out-of-process daemon over gRPC so it can pick up reconciliation; with
// no socket configured, both methods are pure no-ops.
type OrchestratorDefault struct {
	client policysyncpb.PolicySyncClient
	conn   *grpc.ClientConn
}

// NewOrchestratorDefault dials the policy-sync daemon at socketPath
// (a unix socket), or returns a Driver with no client at all when
// socketPath is empty.
func NewOrchestratorDefault(ctx context.Context, socketPath string) (*OrchestratorDefault, error) {
	if socketPath == "" {
		return &OrchestratorDefault{}, nil
	}

	conn, err := grpc.DialContext(ctx, "unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "dialing policy-sync daemon")
	}

	return &OrchestratorDefault{
		client: policysyncpb.NewPolicySyncClient(conn),
		conn:   conn,
	}, nil
}

func (d *OrchestratorDefault) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

func (d *OrchestratorDefault) SetProfile(ctx context.Context, ep *datastore.Endpoint, networkName string) error {
	if d.client == nil {
		return nil
	}
	_, err := d.client.SetProfile(ctx, &policysyncpb.SetProfileRequest{
		Hostname:       ep.Hostname,
		OrchestratorId: ep.OrchestratorID,
		WorkloadId:     ep.WorkloadID,
		NetworkName:    networkName,
	})
	if err != nil {
		return errors.Wrap(err, "notifying policy-sync daemon of new endpoint")
	}
	return nil
}

func (d *OrchestratorDefault) RemoveProfile(ctx context.Context, ep *datastore.Endpoint, _ string) error {
	if d.client == nil {
		return nil
	}
	_, err := d.client.RemoveProfile(ctx, &policysyncpb.RemoveProfileRequest{
		Hostname:       ep.Hostname,
		OrchestratorId: ep.OrchestratorID,
		WorkloadId:     ep.WorkloadID,
	})
	if err != nil {
		return errors.Wrap(err, "notifying policy-sync daemon of removed endpoint")
	}
	return nil
}
