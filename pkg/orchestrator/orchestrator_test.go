package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"go.fabricnet.io/fabric-cni/pkg/cni"
	"go.fabricnet.io/fabric-cni/pkg/datastore"
	fakestore "go.fabricnet.io/fabric-cni/pkg/datastore/fake"
	enginemock "go.fabricnet.io/fabric-cni/pkg/engine/testing"
	"go.fabricnet.io/fabric-cni/pkg/ipam"
	ipammock "go.fabricnet.io/fabric-cni/pkg/ipam/testing"
	"go.fabricnet.io/fabric-cni/pkg/orchestrator"
	policymock "go.fabricnet.io/fabric-cni/pkg/policy/testing"
	provisionmock "go.fabricnet.io/fabric-cni/pkg/provision/testing"
)

func newResult(cidr string) *ipam.Result {
	raw := []byte(`{"cniVersion":"0.4.0","ip4":{"ip":"` + cidr + `"}}`)
	result := &ipam.Result{Raw: raw}
	Expect(json.Unmarshal(raw, result)).To(Succeed())
	return result
}

var _ = Describe("Orchestrator", func() {
	var (
		ctrl       *gomock.Controller
		engineMock *enginemock.MockProbe
		ipamMock   *ipammock.MockInterface
		provMock   *provisionmock.MockInterface
		policyMock *policymock.MockDriver
		store      *fakestore.Adapter

		o    *orchestrator.Orchestrator
		env  *cni.EnvContract
		conf *cni.NetConf
		ctx  context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		engineMock = enginemock.NewMockProbe(ctrl)
		ipamMock = ipammock.NewMockInterface(ctrl)
		provMock = provisionmock.NewMockInterface(ctrl)
		policyMock = policymock.NewMockDriver(ctrl)
		store = fakestore.New()
		ctx = context.Background()

		env = &cni.EnvContract{
			ContainerID: "container-1",
			Netns:       "/var/run/netns/test-1",
			IfName:      "eth0",
			Path:        "/opt/cni/bin",
		}
		conf = &cni.NetConf{}
		conf.Name = "blue-network"
		conf.IPAM.Type = "host-local"

		o = &orchestrator.Orchestrator{
			Hostname:       "node-a",
			OrchestratorID: "k8s",
			IPAM:           ipamMock,
			Store:          store,
			Provisioner:    provMock,
			Engine:         engineMock,
			Policy:         policyMock,
			Log:            logrus.NewEntry(logrus.New()),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Add", func() {
		It("provisions a new workload end to end", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(false, nil)
			result := newResult("10.0.0.5/24")
			ipamMock.EXPECT().Assign("host-local", "/opt/cni/bin", []byte("stdin")).Return(result, nil)
			provMock.EXPECT().
				Provision(gomock.Any(), gomock.Any(), "eth0", gomock.Any()).
				Return("aa:bb:cc:dd:ee:ff", nil)
			policyMock.EXPECT().SetProfile(ctx, gomock.Any(), "blue-network").Return(nil)

			raw, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(Equal(result.Raw))

			ep, err := store.GetEndpoint(ctx, datastore.Key{Hostname: "node-a", OrchestratorID: "k8s", WorkloadID: "container-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ep.MAC).To(Equal("aa:bb:cc:dd:ee:ff"))
			Expect(ep.Name).NotTo(BeEmpty())
		})

		It("does nothing for a host-networked container", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(true, nil)

			raw, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(raw).To(BeEmpty())

			_, err = store.GetEndpoint(ctx, datastore.Key{Hostname: "node-a", OrchestratorID: "k8s", WorkloadID: "container-1"})
			Expect(err).To(MatchError(datastore.ErrNotFound))
		})

		It("fails ADD without touching the datastore when IPAM assignment fails", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(false, nil)
			ipamMock.EXPECT().
				Assign("host-local", "/opt/cni/bin", []byte("stdin")).
				Return(nil, &ipam.ChildError{ExitCode: 7})

			_, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).To(HaveOccurred())

			var oerr *orchestrator.Error
			Expect(err).To(BeAssignableToTypeOf(oerr))
			oerr = err.(*orchestrator.Error)
			Expect(oerr.Kind).To(Equal(orchestrator.KindIPAMError))
			Expect(oerr.ExitCode).To(Equal(7))

			_, err = store.GetEndpoint(ctx, datastore.Key{Hostname: "node-a", OrchestratorID: "k8s", WorkloadID: "container-1"})
			Expect(err).To(MatchError(datastore.ErrNotFound))
		})

		It("releases the IPAM allocation when the result is missing ip4.ip", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(false, nil)
			raw := []byte(`{"cniVersion":"0.4.0"}`)
			result := &ipam.Result{Raw: raw}
			ipamMock.EXPECT().
				Assign("host-local", "/opt/cni/bin", []byte("stdin")).
				Return(result, errors.New("IPAM plugin did not return an ip4.ip field"))
			ipamMock.EXPECT().Release("host-local", []byte("stdin")).Return(nil)

			_, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).To(HaveOccurred())

			var oerr *orchestrator.Error
			Expect(err).To(BeAssignableToTypeOf(oerr))
			oerr = err.(*orchestrator.Error)
			Expect(oerr.Kind).To(Equal(orchestrator.KindIPAMError))
		})

		It("releases the IPAM allocation when the result has a malformed CIDR", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(false, nil)
			raw := []byte(`{"cniVersion":"0.4.0","ip4":{"ip":"not-a-cidr"}}`)
			result := &ipam.Result{Raw: raw}
			Expect(json.Unmarshal(raw, result)).To(Succeed())
			ipamMock.EXPECT().
				Assign("host-local", "/opt/cni/bin", []byte("stdin")).
				Return(result, errors.New("IPAM plugin returned malformed CIDR \"not-a-cidr\""))
			ipamMock.EXPECT().Release("host-local", []byte("stdin")).Return(nil)

			_, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).To(HaveOccurred())

			var oerr *orchestrator.Error
			Expect(err).To(BeAssignableToTypeOf(oerr))
			oerr = err.(*orchestrator.Error)
			Expect(oerr.Kind).To(Equal(orchestrator.KindIPAMError))
		})

		It("releases the IPAM allocation when endpoint creation fails", func() {
			engineMock.EXPECT().UsesHostNetworking(ctx, "container-1").Return(false, nil)
			result := newResult("10.0.0.5/24")
			ipamMock.EXPECT().Assign("host-local", "/opt/cni/bin", []byte("stdin")).Return(result, nil)
			ipamMock.EXPECT().Release("host-local", []byte("stdin")).Return(nil)

			failingStore := &unavailableStore{Adapter: store}
			o.Store = failingStore

			_, err := o.Add(ctx, env, conf, []byte("stdin"))
			Expect(err).To(HaveOccurred())

			var oerr *orchestrator.Error
			Expect(err).To(BeAssignableToTypeOf(oerr))
			oerr = err.(*orchestrator.Error)
			Expect(oerr.Kind).To(Equal(orchestrator.KindDatastoreUnavailable))
		})
	})

	Describe("Del", func() {
		It("tears down an existing workload end to end", func() {
			_, err := store.CreateEndpoint(ctx, "node-a", "k8s", "container-1", []net.IPNet{})
			Expect(err).NotTo(HaveOccurred())
			Expect(store.SetEndpoint(ctx, &datastore.Endpoint{
				Hostname: "node-a", OrchestratorID: "k8s", WorkloadID: "container-1",
				Name: "fabdeadbeef",
			})).To(Succeed())

			ipamMock.EXPECT().Release("host-local", []byte("stdin")).Return(nil)
			policyMock.EXPECT().RemoveProfile(ctx, gomock.Any(), "blue-network").Return(nil)

			err = o.Del(ctx, env, conf, []byte("stdin"))
			Expect(err).NotTo(HaveOccurred())

			_, err = store.GetEndpoint(ctx, datastore.Key{Hostname: "node-a", OrchestratorID: "k8s", WorkloadID: "container-1"})
			Expect(err).To(MatchError(datastore.ErrNotFound))
		})

		It("is a no-op when no endpoint matches the container", func() {
			ipamMock.EXPECT().Release("host-local", []byte("stdin")).Return(nil)

			err := o.Del(ctx, env, conf, []byte("stdin"))
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

// unavailableStore wraps a working datastore.Adapter but fails
// CreateEndpoint, to exercise the ADD compensation path without a second
// fake implementation.
type unavailableStore struct {
	*fakestore.Adapter
}

func (s *unavailableStore) CreateEndpoint(ctx context.Context, hostname, orchestratorID, workloadID string, cidrs []net.IPNet) (*datastore.Endpoint, error) {
	return nil, datastore.NewUnavailableError(errUnavailable)
}

var errUnavailable = &simpleError{"datastore backend unreachable"}

type simpleError struct{ msg string }

func (e *simpleError) Error() string { return e.msg }
