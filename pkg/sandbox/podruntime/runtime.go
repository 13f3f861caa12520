// Package podruntime wraps the pod lifecycle calls the Sandbox Controller
// needs (§4.7: create/read-status/delete/logs) behind a narrow interface so
// the controller itself never imports client-go directly. No runnable
// source in the retrieval pack exercises k8s.io/client-go against a real
// API server (kubernaut's go.mod lists it but its own k8sutil package isn't
// present in the pack, only its unit test), so this is hand-written against
// client-go's own published conventions: rest.InClusterConfig falling back
// to kubeconfig, a typed kubernetes.Interface, and CoreV1().Pods(ns) calls.
package podruntime

import (
	"context"
	"fmt"
	"os"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Phase mirrors the subset of corev1.PodPhase the Sandbox Controller's
// reconcile loop switches on (§4.7).
type Phase string

const (
	PhasePending   Phase = "Pending"
	PhaseRunning   Phase = "Running"
	PhaseSucceeded Phase = "Succeeded"
	PhaseFailed    Phase = "Failed"
	PhaseUnknown   Phase = "Unknown"
)

// Status is the pod state the controller reconciles sandbox rows against.
type Status struct {
	Phase Phase
	PodIP string
}

// Spec describes the pod the controller wants created for one sandbox.
type Spec struct {
	Namespace string
	Name      string
	Image     string
	Labels    map[string]string
	Env       map[string]string
}

// ErrPodNotFound is returned by GetStatus/GetLogs when the named pod is
// absent — the controller treats this as "runtime pod not yet provisioned"
// rather than a transient failure.
var ErrPodNotFound = fmt.Errorf("pod not found")

// Runtime is the pod lifecycle surface the Sandbox Controller depends on.
// The production implementation is *K8sRuntime; tests substitute a fake.
type Runtime interface {
	CreatePod(ctx context.Context, spec Spec) error
	GetStatus(ctx context.Context, namespace, name string) (Status, error)
	DeletePod(ctx context.Context, namespace, name string) error
	GetLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error)
}

// K8sRuntime implements Runtime against a real Kubernetes API server.
type K8sRuntime struct {
	clientset kubernetes.Interface
}

// NewK8sRuntime builds a client from in-cluster config when available,
// falling back to KUBECONFIG (or ~/.kube/config) for local/dev use —
// the standard client-go bootstrap sequence.
func NewK8sRuntime() (*K8sRuntime, error) {
	cfg, err := rest.InClusterConfig()
	if err != nil {
		kubeconfig := os.Getenv("KUBECONFIG")
		if kubeconfig == "" {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return nil, fmt.Errorf("resolve kubeconfig path: %w", herr)
			}
			kubeconfig = home + "/.kube/config"
		}
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("load kubeconfig: %w", err)
		}
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build kubernetes clientset: %w", err)
	}
	return &K8sRuntime{clientset: clientset}, nil
}

// NewK8sRuntimeFromClientset wraps an existing clientset (test/fake use).
func NewK8sRuntimeFromClientset(clientset kubernetes.Interface) *K8sRuntime {
	return &K8sRuntime{clientset: clientset}
}

func (r *K8sRuntime) CreatePod(ctx context.Context, spec Spec) error {
	envVars := make([]corev1.EnvVar, 0, len(spec.Env))
	for k, v := range spec.Env {
		envVars = append(envVars, corev1.EnvVar{Name: k, Value: v})
	}

	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels,
		},
		Spec: corev1.PodSpec{
			RestartPolicy: corev1.RestartPolicyNever,
			Containers: []corev1.Container{
				{
					Name:  "runner",
					Image: spec.Image,
					Env:   envVars,
				},
			},
		},
	}

	_, err := r.clientset.CoreV1().Pods(spec.Namespace).Create(ctx, pod, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create pod %s/%s: %w", spec.Namespace, spec.Name, err)
	}
	return nil
}

func (r *K8sRuntime) GetStatus(ctx context.Context, namespace, name string) (Status, error) {
	pod, err := r.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return Status{}, ErrPodNotFound
	}
	if err != nil {
		return Status{}, fmt.Errorf("get pod %s/%s: %w", namespace, name, err)
	}
	return Status{Phase: Phase(pod.Status.Phase), PodIP: pod.Status.PodIP}, nil
}

func (r *K8sRuntime) DeletePod(ctx context.Context, namespace, name string) error {
	err := r.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("delete pod %s/%s: %w", namespace, name, err)
	}
	return nil
}

func (r *K8sRuntime) GetLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error) {
	if tailLines <= 0 {
		tailLines = 200
	}
	req := r.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{TailLines: &tailLines})
	stream, err := req.Stream(ctx)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", ErrPodNotFound
		}
		return "", fmt.Errorf("stream logs for %s/%s: %w", namespace, name, err)
	}
	defer stream.Close()

	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, rerr := stream.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if rerr != nil {
			break
		}
	}
	return string(buf), nil
}
