// Package registry defines the controller discovery interface and data
// types. A tightening cell is rarely a single controller: a production line
// station can have several, and which ones are currently reachable changes
// as controllers reboot or get swapped. Instead of hardcoding IP:port pairs,
// controllers (or a sidecar watching them) register themselves in etcd, and
// an opctl instance or a supervising service queries the registry to find
// the live set for a given cell.
package registry

// ServiceInstance represents a single tightening controller's TCP endpoint.
// The field names are generic (this shape was originally a general
// service-instance record) but Addr is always a controller's dial address.
type ServiceInstance struct {
	Addr    string // Controller TCP address, e.g., "127.0.0.1:4545"
	Weight  int    // Weight for load balancing across controllers on the same cell
	Version string // Controller firmware/protocol version, for canary rollouts
}

// Registry is the interface for controller registration and discovery.
// EtcdRegistry is the implementation in this package.
type Registry interface {
	// Register adds a controller endpoint to the registry with a TTL lease.
	// The entry is automatically removed if KeepAlive stops (e.g. the
	// controller or the sidecar watching it goes offline).
	Register(cellName string, instance ServiceInstance, ttl int64) error

	// Deregister removes a controller endpoint from the registry. Called
	// during graceful shutdown before the owning process exits.
	Deregister(cellName string, addr string) error

	// Discover returns all currently registered controller endpoints for a
	// cell. A caller uses this to get the instance list for load balancing
	// across multiple controllers.
	Discover(cellName string) ([]ServiceInstance, error)

	// Watch returns a channel that emits the updated endpoint list whenever
	// a cell's controllers change (new registrations, removals, lease
	// expirations). This enables real-time discovery without polling.
	Watch(cellName string) <-chan []ServiceInstance
}
