// Command fabric-cni is the CNI plugin binary: a one-shot process invoked
// once per ADD/DEL/CHECK by the container runtime, implementing the
// orchestration state machine in pkg/orchestrator.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/containernetworking/cni/pkg/skel"
	"github.com/containernetworking/cni/pkg/version"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/runtime"
	ctrlclient "sigs.k8s.io/controller-runtime/pkg/client"
	ctrlconfig "sigs.k8s.io/controller-runtime/pkg/client/config"

	"go.fabricnet.io/fabric-cni/pkg/cni"
	"go.fabricnet.io/fabric-cni/pkg/config"
	"go.fabricnet.io/fabric-cni/pkg/datastore"
	fakestore "go.fabricnet.io/fabric-cni/pkg/datastore/fake"
	k8sstore "go.fabricnet.io/fabric-cni/pkg/datastore/k8s"
	"go.fabricnet.io/fabric-cni/pkg/engine"
	"go.fabricnet.io/fabric-cni/pkg/ipam"
	"go.fabricnet.io/fabric-cni/pkg/logging"
	"go.fabricnet.io/fabric-cni/pkg/metrics"
	"go.fabricnet.io/fabric-cni/pkg/orchestrator"
	"go.fabricnet.io/fabric-cni/pkg/policy"
	"go.fabricnet.io/fabric-cni/pkg/provision"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			err := orchestrator.NewUnexpectedPanicError(fmt.Errorf("%v", r))
			logrus.WithField("stack", string(debug.Stack())).WithError(err).Error("fabric-cni: unexpected panic")
			os.Exit(1)
		}
	}()

	skel.PluginMain(cmdAdd, cmdCheck, cmdDel, version.All, "fabric-cni")
}

// pluginRuntime bundles everything an invocation needs, built fresh for
// every ADD/DEL since the plugin is one-shot (spec §5: no shared process
// state across invocations).
type pluginRuntime struct {
	daemon  config.Daemon
	log     *logrus.Entry
	metrics *metrics.Collector
	orch    *orchestrator.Orchestrator
}

func setup(args *skel.CmdArgs) (*pluginRuntime, *cni.EnvContract, *cni.NetConf, error) {
	daemon, err := config.Load(config.DefaultPath)
	if err != nil {
		return nil, nil, nil, orchestrator.NewConfigInvalidError(err)
	}

	logger, err := logging.New(logging.Config{Level: daemon.LogLevel, FilePath: daemon.LogFile})
	if err != nil {
		return nil, nil, nil, orchestrator.NewConfigInvalidError(err)
	}
	log := logger.WithField("cniContainerID", args.ContainerID)

	conf, err := cni.ParseNetworkConfig(args.StdinData)
	if err != nil {
		return nil, nil, nil, orchestrator.NewConfigInvalidError(err)
	}

	env := &cni.EnvContract{
		ContainerID: args.ContainerID,
		Netns:       args.Netns,
		IfName:      args.IfName,
		RawArgs:     args.Args,
		Path:        args.Path,
	}
	env.Args = cni.ParseCNIArgs(env.RawArgs)

	hostname := daemon.HostnameOverride
	if hostname == "" {
		hostname, err = os.Hostname()
		if err != nil {
			return nil, nil, nil, orchestrator.NewConfigInvalidError(err)
		}
	}
	orchestratorID := daemon.OrchestratorID
	if orchestratorID == "" {
		orchestratorID = config.DefaultOrchestratorID
	}

	store, err := buildDatastore(daemon, hostname)
	if err != nil {
		return nil, nil, nil, err
	}

	_, runsUnderK8s := env.Args["K8S_POD_NAME"]

	var eng engine.Probe = engine.Default{}
	if runsUnderK8s {
		eng = engine.NewDockerAware()
	}

	var driver policy.Driver
	if runsUnderK8s {
		policySyncSocket := conf.PolicySyncSocket
		if policySyncSocket == "" {
			policySyncSocket = daemon.PolicySyncSocket
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		driver, err = policy.NewOrchestratorDefault(ctx, policySyncSocket)
		if err != nil {
			return nil, nil, nil, orchestrator.NewDatastoreUnavailableError(err)
		}
	} else {
		driver, err = policy.NewPerNetwork(store, conf.Name)
		if err != nil {
			return nil, nil, nil, orchestrator.NewInvalidNetworkNameError(err)
		}
	}

	rt := &pluginRuntime{
		daemon:  daemon,
		log:     log,
		metrics: metrics.New(),
		orch: &orchestrator.Orchestrator{
			Hostname:       hostname,
			OrchestratorID: orchestratorID,
			IPAM:           ipam.NewClient(log),
			Store:          store,
			Provisioner:    provision.New(),
			Engine:         eng,
			Policy:         driver,
			Log:            log,
		},
	}
	return rt, env, conf, nil
}

func buildDatastore(daemon config.Daemon, hostname string) (datastore.Adapter, error) {
	switch daemon.DatastoreKind {
	case "fake":
		return fakestore.New(), nil
	case "", "k8s":
		restConfig, err := ctrlconfig.GetConfig()
		if err != nil {
			return nil, orchestrator.NewDatastoreUnavailableError(err)
		}
		scheme := runtime.NewScheme()
		if err := k8sstore.AddToScheme(scheme); err != nil {
			return nil, orchestrator.NewDatastoreUnavailableError(err)
		}
		c, err := ctrlclient.New(restConfig, ctrlclient.Options{Scheme: scheme})
		if err != nil {
			return nil, orchestrator.NewDatastoreUnavailableError(err)
		}
		namespace := daemon.DatastoreNamespace
		if namespace == "" {
			namespace = "default"
		}
		membership := k8sstore.NewStaticMembership(hostname)
		return k8sstore.New(c, namespace, membership), nil
	default:
		return nil, orchestrator.NewConfigInvalidError(fmt.Errorf("unknown datastoreKind %q", daemon.DatastoreKind))
	}
}

func cmdAdd(args *skel.CmdArgs) error {
	rt, env, conf, err := setup(args)
	if err != nil {
		return err
	}
	env.Command = cni.CommandAdd

	raw, err := rt.orch.Add(context.Background(), env, conf, args.StdinData)
	if err != nil {
		rt.metrics.AddFailuresTotal.WithLabelValues(kindOf(err)).Inc()
		flushMetrics(rt)
		return err
	}
	rt.metrics.AddTotal.Inc()
	flushMetrics(rt)

	if len(raw) == 0 {
		return nil
	}
	// Spec §4.8/§6: the stored IPAM result is emitted byte-for-byte, not
	// re-encoded through the CNI result types (which would normalize
	// field order/shape and inject cniVersion).
	_, err = os.Stdout.Write(raw)
	return err
}

func cmdDel(args *skel.CmdArgs) error {
	rt, env, conf, err := setup(args)
	if err != nil {
		return err
	}
	env.Command = cni.CommandDel

	err = rt.orch.Del(context.Background(), env, conf, args.StdinData)
	if err != nil {
		rt.metrics.DelFailuresTotal.WithLabelValues(kindOf(err)).Inc()
	} else {
		rt.metrics.DelTotal.Inc()
	}
	flushMetrics(rt)
	return err
}

// cmdCheck verifies a previously-ADDed workload is still consistent. The
// orchestration contract this plugin implements doesn't define a CHECK
// state separately from ADD's steady state, so this is a successful
// no-op, the same fallback many CNI plugins use when they don't model
// CHECK as a distinct operation.
func cmdCheck(_ *skel.CmdArgs) error {
	return nil
}

func flushMetrics(rt *pluginRuntime) {
	logDir := filepath.Dir(rt.daemon.LogFile)
	if rt.daemon.LogFile == "" {
		logDir = filepath.Dir(logging.DefaultLogFile)
	}
	if err := rt.metrics.WriteTextfile(logDir); err != nil {
		rt.log.WithError(err).Warn("failed to write metrics textfile")
	}
}

func kindOf(err error) string {
	if oerr, ok := err.(*orchestrator.Error); ok {
		return string(oerr.Kind)
	}
	return "unknown"
}
