// Package loadbalance provides strategies for picking which controller
// endpoint on a cell to dial, when registry.Discover returns more than one
// for the same cell name.
//
// Two strategies are implemented:
//   - RoundRobin:      equal-capacity controllers, spread connections evenly
//   - ConsistentHash:  route a given VIN/job key to the same controller
//     every time, so its tightening history stays on one connection
//     (see client.Pool, which wires this one into cmd/opctl's -vin flag)
package loadbalance

import "github.com/dezemand/openprotocol-go/registry"

// Balancer is the interface for controller-endpoint selection strategies.
// A caller invokes Pick() before dialing to choose a target controller.
type Balancer interface {
	// Pick selects one endpoint from the available list.
	// Called on every connect attempt — must be goroutine-safe.
	Pick(instances []registry.ServiceInstance) (*registry.ServiceInstance, error)

	// Name returns the strategy name (for logging/debugging).
	Name() string
}
