package client

import (
	"context"
	"sync"

	"github.com/dezemand/openprotocol-go/loadbalance"
	"github.com/dezemand/openprotocol-go/registry"
)

// Pool multiplexes EventLoop connections across every controller endpoint
// registry.Discover returns for a cell, routing a given VIN or job key to
// the same controller connection for the life of its tightening sequence
// via loadbalance.ConsistentHashBalancer — instead of a fresh RoundRobin
// pick (and a new connection) per request.
type Pool struct {
	mu   sync.Mutex
	cfg  Config
	hash *loadbalance.ConsistentHashBalancer
	open map[string]*EventLoop // instance addr -> live connection
}

// NewPool builds a Pool over instances, adding each to a consistent-hash
// ring. cfg is reused for every connection the pool dials, except Addr,
// which Connection overrides per instance.
func NewPool(instances []registry.ServiceInstance, cfg Config) *Pool {
	hash := loadbalance.NewConsistentHashBalancer()
	for i := range instances {
		hash.Add(&instances[i])
	}
	return &Pool{
		cfg:  cfg,
		hash: hash,
		open: make(map[string]*EventLoop),
	}
}

// Connection returns the EventLoop responsible for key (a VIN, job ID, or
// any other string a caller wants pinned to one controller), dialing it on
// first use and reusing the same connection for every later key that
// hashes to the same instance.
func (p *Pool) Connection(ctx context.Context, key string) (*EventLoop, error) {
	instance, err := p.hash.Pick(key)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if loop, ok := p.open[instance.Addr]; ok {
		return loop, nil
	}

	cfg := p.cfg
	cfg.Addr = instance.Addr
	loop, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	p.open[instance.Addr] = loop
	return loop, nil
}

// Close closes every connection the pool has opened so far, returning the
// first error encountered (if any) after attempting all of them.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for addr, loop := range p.open {
		if err := loop.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.open, addr)
	}
	return firstErr
}
