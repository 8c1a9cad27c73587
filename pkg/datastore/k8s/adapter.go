package k8s

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"regexp"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"go.fabricnet.io/fabric-cni/pkg/datastore"
)

// Adapter backs datastore.Adapter onto WorkloadEndpoint custom resources
// in a single namespace, reachable through a controller-runtime client.
type Adapter struct {
	client     client.Client
	namespace  string
	membership Membership
}

// New constructs an Adapter. membership, when non-nil, is consulted by
// CreateEndpoint before any write is attempted.
func New(c client.Client, namespace string, membership Membership) *Adapter {
	return &Adapter{client: c, namespace: namespace, membership: membership}
}

var invalidDNSChars = regexp.MustCompile(`[^a-z0-9-]+`)

// resourceName derives a DNS-1123-safe, collision-resistant object name
// from a Key so GetEndpoint and RemoveWorkload can address the resource
// directly instead of listing and filtering.
func resourceName(key datastore.Key) string {
	raw := strings.ToLower(key.String())
	sanitized := invalidDNSChars.ReplaceAllString(raw, "-")
	sum := sha256.Sum256([]byte(key.String()))
	suffix := fmt.Sprintf("%x", sum[:4])
	if len(sanitized) > 200 {
		sanitized = sanitized[:200]
	}
	return fmt.Sprintf("wep-%s-%s", strings.Trim(sanitized, "-"), suffix)
}

func (a *Adapter) CreateEndpoint(ctx context.Context, hostname, orchestratorID, workloadID string, cidrs []net.IPNet) (*datastore.Endpoint, error) {
	if a.membership != nil {
		alive := a.membership.AliveNodes()
		if !alive.Has(hostname) {
			return nil, datastore.NewUnavailableError(
				fmt.Errorf("host %q is not a live member of the fabric", hostname))
		}
	}

	key := datastore.Key{Hostname: hostname, OrchestratorID: orchestratorID, WorkloadID: workloadID}
	networks := make([]string, 0, len(cidrs))
	for _, c := range cidrs {
		networks = append(networks, c.String())
	}

	wep := &WorkloadEndpoint{
		ObjectMeta: metav1.ObjectMeta{
			Name:      resourceName(key),
			Namespace: a.namespace,
		},
		Spec: WorkloadEndpointSpec{
			Hostname:       hostname,
			OrchestratorID: orchestratorID,
			WorkloadID:     workloadID,
			IPNetworks:     networks,
		},
	}

	if err := a.client.Create(ctx, wep); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return nil, datastore.ErrAmbiguous
		}
		return nil, datastore.NewUnavailableError(err)
	}
	klog.V(3).InfoS("Created workload endpoint", "key", key.String())

	return wepToEndpoint(wep), nil
}

func (a *Adapter) SetEndpoint(ctx context.Context, ep *datastore.Endpoint) error {
	name := resourceName(ep.Key())
	var existing WorkloadEndpoint
	if err := a.client.Get(ctx, client.ObjectKey{Namespace: a.namespace, Name: name}, &existing); err != nil {
		if apierrors.IsNotFound(err) {
			return datastore.ErrNotFound
		}
		return datastore.NewUnavailableError(err)
	}

	existing.Spec = endpointToSpec(ep)
	if err := a.client.Update(ctx, &existing); err != nil {
		return datastore.NewUnavailableError(err)
	}
	return nil
}

func (a *Adapter) GetEndpoint(ctx context.Context, key datastore.Key) (*datastore.Endpoint, error) {
	var wep WorkloadEndpoint
	name := resourceName(key)
	if err := a.client.Get(ctx, client.ObjectKey{Namespace: a.namespace, Name: name}, &wep); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, datastore.ErrNotFound
		}
		return nil, datastore.NewUnavailableError(err)
	}
	return wepToEndpoint(&wep), nil
}

func (a *Adapter) RemoveWorkload(ctx context.Context, key datastore.Key) error {
	wep := &WorkloadEndpoint{
		ObjectMeta: metav1.ObjectMeta{Name: resourceName(key), Namespace: a.namespace},
	}
	if err := a.client.Delete(ctx, wep); err != nil {
		if apierrors.IsNotFound(err) {
			return datastore.ErrNotFound
		}
		return datastore.NewUnavailableError(err)
	}
	klog.V(3).InfoS("Removed workload endpoint", "key", key.String())
	return nil
}

// ListEndpoints returns every WorkloadEndpoint in the adapter's namespace,
// translated to datastore.Endpoint. Used by fabric-cnitool's
// list-endpoints diagnostic command; the orchestrator itself never lists.
func (a *Adapter) ListEndpoints(ctx context.Context) ([]*datastore.Endpoint, error) {
	var weps WorkloadEndpointList
	if err := a.client.List(ctx, &weps, client.InNamespace(a.namespace)); err != nil {
		return nil, datastore.NewUnavailableError(err)
	}
	eps := make([]*datastore.Endpoint, 0, len(weps.Items))
	for i := range weps.Items {
		eps = append(eps, wepToEndpoint(&weps.Items[i]))
	}
	return eps, nil
}

func profileResourceName(name string) string {
	sanitized := invalidDNSChars.ReplaceAllString(strings.ToLower(name), "-")
	sum := sha256.Sum256([]byte(name))
	return fmt.Sprintf("profile-%s-%x", strings.Trim(sanitized, "-"), sum[:4])
}

func (a *Adapter) EnsureProfile(ctx context.Context, name string) error {
	profile := &NetworkProfile{
		ObjectMeta: metav1.ObjectMeta{Name: profileResourceName(name), Namespace: a.namespace},
	}
	if err := a.client.Create(ctx, profile); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return nil
		}
		return datastore.NewUnavailableError(err)
	}
	return nil
}

func (a *Adapter) DeleteProfileIfUnreferenced(ctx context.Context, name string) error {
	var weps WorkloadEndpointList
	if err := a.client.List(ctx, &weps, client.InNamespace(a.namespace)); err != nil {
		return datastore.NewUnavailableError(err)
	}
	for _, wep := range weps.Items {
		for _, p := range wep.Spec.ProfileIDs {
			if p == name {
				return nil
			}
		}
	}

	profile := &NetworkProfile{
		ObjectMeta: metav1.ObjectMeta{Name: profileResourceName(name), Namespace: a.namespace},
	}
	if err := a.client.Delete(ctx, profile); err != nil && !apierrors.IsNotFound(err) {
		return datastore.NewUnavailableError(err)
	}
	return nil
}

func endpointToSpec(ep *datastore.Endpoint) WorkloadEndpointSpec {
	networks := make([]string, 0, len(ep.IPAddresses))
	for _, c := range ep.IPAddresses {
		networks = append(networks, c.String())
	}
	return WorkloadEndpointSpec{
		Hostname:       ep.Hostname,
		OrchestratorID: ep.OrchestratorID,
		WorkloadID:     ep.WorkloadID,
		InterfaceName:  ep.Name,
		MAC:            ep.MAC,
		IPNetworks:     networks,
		ProfileIDs:     ep.ProfileIDs,
	}
}

func wepToEndpoint(wep *WorkloadEndpoint) *datastore.Endpoint {
	cidrs := make([]net.IPNet, 0, len(wep.Spec.IPNetworks))
	for _, s := range wep.Spec.IPNetworks {
		if _, n, err := net.ParseCIDR(s); err == nil {
			cidrs = append(cidrs, *n)
		}
	}
	return &datastore.Endpoint{
		Hostname:       wep.Spec.Hostname,
		OrchestratorID: wep.Spec.OrchestratorID,
		WorkloadID:     wep.Spec.WorkloadID,
		Name:           wep.Spec.InterfaceName,
		MAC:            wep.Spec.MAC,
		IPAddresses:    cidrs,
		ProfileIDs:     wep.Spec.ProfileIDs,
	}
}
