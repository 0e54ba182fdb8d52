// Package buildinfo carries build-time identity exposed on /health.
package buildinfo

// Version is the fixed build version tag. Overridable at link time:
//
//	go build -ldflags "-X github.com/QuantumPodLabs/quantumpod/internal/buildinfo.Version=..."
var Version = "0.3.0"
