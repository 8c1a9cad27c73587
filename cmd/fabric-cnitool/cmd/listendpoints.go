package cmd

import (
	"context"
	"fmt"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	ctrlclient "sigs.k8s.io/controller-runtime/pkg/client"
	ctrlconfig "sigs.k8s.io/controller-runtime/pkg/client/config"

	"go.fabricnet.io/fabric-cni/pkg/config"
	"go.fabricnet.io/fabric-cni/pkg/datastore"
	fakestore "go.fabricnet.io/fabric-cni/pkg/datastore/fake"
	k8sstore "go.fabricnet.io/fabric-cni/pkg/datastore/k8s"
)

func newListEndpointsCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "list-endpoints",
		Short: "List every workload endpoint recorded in the datastore",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			daemon, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading daemon configuration: %w", err)
			}
			if namespace != "" {
				daemon.DatastoreNamespace = namespace
			}

			store, err := openLister(daemon)
			if err != nil {
				return err
			}

			ctx := context.Background()
			endpoints, err := store.ListEndpoints(ctx)
			if err != nil {
				return fmt.Errorf("listing endpoints: %w", err)
			}

			bar := pb.StartNew(len(endpoints))
			defer bar.Finish()
			for _, ep := range endpoints {
				bar.Increment()
				fmt.Fprintf(cmd.OutOrStdout(), "%s/%s/%s\tiface=%s\tmac=%s\tips=%v\n",
					ep.Hostname, ep.OrchestratorID, ep.WorkloadID, ep.Name, ep.MAC, ep.IPAddresses)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "override the configured datastore namespace (k8s backend only)")
	return cmd
}

// openLister builds whichever datastore.Adapter the daemon config names
// and asserts it implements datastore.Lister. Every production backend
// this tool supports (fake and k8s) does.
func openLister(daemon config.Daemon) (datastore.Lister, error) {
	switch daemon.DatastoreKind {
	case "fake":
		return fakestore.New(), nil
	case "", "k8s":
		restConfig, err := ctrlconfig.GetConfig()
		if err != nil {
			return nil, fmt.Errorf("loading kubeconfig: %w", err)
		}
		scheme := runtime.NewScheme()
		if err := k8sstore.AddToScheme(scheme); err != nil {
			return nil, fmt.Errorf("registering datastore types: %w", err)
		}
		c, err := ctrlclient.New(restConfig, ctrlclient.Options{Scheme: scheme})
		if err != nil {
			return nil, fmt.Errorf("building Kubernetes client: %w", err)
		}
		namespace := daemon.DatastoreNamespace
		if namespace == "" {
			namespace = "default"
		}
		return k8sstore.New(c, namespace, nil), nil
	default:
		return nil, fmt.Errorf("unknown datastoreKind %q", daemon.DatastoreKind)
	}
}
