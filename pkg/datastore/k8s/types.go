// Package k8s backs datastore.Adapter onto a WorkloadEndpoint custom
// resource via sigs.k8s.io/controller-runtime's client.Client, for
// orchestrator deployments that run under a Kubernetes orchestrator_id
// rather than the in-memory fake.
package k8s

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupVersion identifies the fabric CRD API group served by this
// adapter's cluster.
var GroupVersion = schema.GroupVersion{Group: "fabric.fabricnet.io", Version: "v1alpha1"}

// WorkloadEndpoint is the custom resource backing a single
// datastore.Endpoint. Its name is derived from the endpoint's Key so
// GetEndpoint/RemoveWorkload can address it directly without a list+filter.
type WorkloadEndpoint struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec WorkloadEndpointSpec `json:"spec,omitempty"`
}

// WorkloadEndpointSpec mirrors datastore.Endpoint.
type WorkloadEndpointSpec struct {
	Hostname       string   `json:"hostname"`
	OrchestratorID string   `json:"orchestratorID"`
	WorkloadID     string   `json:"workloadID"`
	InterfaceName  string   `json:"interfaceName,omitempty"`
	MAC            string   `json:"mac,omitempty"`
	IPNetworks     []string `json:"ipNetworks,omitempty"`
	ProfileIDs     []string `json:"profileIDs,omitempty"`
}

// WorkloadEndpointList is the list type required for client.Client's
// List calls and for registering WorkloadEndpoint with a runtime.Scheme.
type WorkloadEndpointList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []WorkloadEndpoint `json:"items"`
}

func (in *WorkloadEndpoint) DeepCopyObject() runtime.Object {
	out := *in
	out.ObjectMeta = *in.ObjectMeta.DeepCopy()
	out.Spec.IPNetworks = append([]string(nil), in.Spec.IPNetworks...)
	out.Spec.ProfileIDs = append([]string(nil), in.Spec.ProfileIDs...)
	return &out
}

func (in *WorkloadEndpointList) DeepCopyObject() runtime.Object {
	out := *in
	out.ListMeta = *in.ListMeta.DeepCopy()
	if in.Items != nil {
		out.Items = make([]WorkloadEndpoint, len(in.Items))
		for i := range in.Items {
			out.Items[i] = *in.Items[i].DeepCopyObject().(*WorkloadEndpoint)
		}
	}
	return &out
}

// NetworkProfile is the datastore-level entity backing PerNetwork's
// set_profile/remove_profile: it exists independent of any one endpoint
// and is only deleted once no WorkloadEndpoint references it any more.
type NetworkProfile struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
}

type NetworkProfileList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []NetworkProfile `json:"items"`
}

func (in *NetworkProfile) DeepCopyObject() runtime.Object {
	out := *in
	out.ObjectMeta = *in.ObjectMeta.DeepCopy()
	return &out
}

func (in *NetworkProfileList) DeepCopyObject() runtime.Object {
	out := *in
	out.ListMeta = *in.ListMeta.DeepCopy()
	if in.Items != nil {
		out.Items = make([]NetworkProfile, len(in.Items))
		for i := range in.Items {
			out.Items[i] = *in.Items[i].DeepCopyObject().(*NetworkProfile)
		}
	}
	return &out
}

// AddToScheme registers the fabric CRD types with scheme, for use in a
// controller-runtime manager's client builder.
func AddToScheme(scheme *runtime.Scheme) error {
	scheme.AddKnownTypes(GroupVersion,
		&WorkloadEndpoint{}, &WorkloadEndpointList{},
		&NetworkProfile{}, &NetworkProfileList{},
	)
	metav1.AddToGroupVersion(scheme, GroupVersion)
	return nil
}
