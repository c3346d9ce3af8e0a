// Command opctl is a small demo client: it connects to one tightening
// controller, requests its parameter set catalog, prints every event as it
// arrives, and closes the connection cleanly on SIGINT — the same
// connect/poll/pattern-match/graceful-close flow as the reference client's
// own main/test binaries, translated from an async match-on-event loop to
// a blocking for loop over EventLoop.Poll.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dezemand/openprotocol-go/client"
	"github.com/dezemand/openprotocol-go/loadbalance"
	"github.com/dezemand/openprotocol-go/metrics"
	"github.com/dezemand/openprotocol-go/protocol"
	"github.com/dezemand/openprotocol-go/registry"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4545", "controller address to dial")
	cell := flag.String("cell", "", "if set, look up controller endpoints for this cell in etcd instead of dialing -addr directly")
	etcdEndpoints := flag.String("etcd", "127.0.0.1:2379", "comma-separated etcd endpoints, used only when -cell is set")
	vin := flag.String("vin", "", "if set with -cell, pin this VIN/job key to one controller connection in the cell via consistent hashing instead of a fresh round-robin pick")
	keepAlive := flag.Duration("keepalive", 5*time.Second, "keep-alive interval")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	flag.Parse()

	var collector *metrics.Collector
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector = metrics.NewCollector(reg)
		go serveMetrics(*metricsAddr, reg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop, closeConn, err := connect(ctx, *addr, *cell, *etcdEndpoints, *vin, *keepAlive)
	if err != nil {
		log.Fatalf("opctl: connect: %v", err)
	}
	defer closeConn()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		fmt.Println("opctl: shutting down")
		_ = loop.Send(ctx, protocol.MID0003rev1{})
		time.Sleep(time.Second)
		cancel()
	}()

	runEventLoop(ctx, loop, collector)
}

// connect picks how to reach a controller: a plain -addr dial, a -cell
// round-robin pick, or — when -vin is also set — a cell-wide client.Pool
// that pins the VIN to one controller via consistent hashing for the life
// of the process. It returns the chosen EventLoop and a closer that tears
// down whatever it opened (the Pool in the -vin case, the lone connection
// otherwise).
func connect(ctx context.Context, addr, cell, etcdEndpoints, vin string, keepAlive time.Duration) (*client.EventLoop, func(), error) {
	if cell != "" && vin != "" {
		instances, err := discoverCell(cell, etcdEndpoints)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve cell %q: %w", cell, err)
		}
		pool := client.NewPool(instances, client.Config{KeepAliveInterval: keepAlive})
		loop, err := pool.Connection(ctx, vin)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("route VIN %q on cell %q: %w", vin, cell, err)
		}
		return loop, func() { pool.Close() }, nil
	}

	dialAddr := addr
	if cell != "" {
		var err error
		dialAddr, err = pickControllerAddr(cell, etcdEndpoints)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve cell %q: %w", cell, err)
		}
	}
	loop, err := client.Connect(ctx, client.Config{Addr: dialAddr, KeepAliveInterval: keepAlive})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", dialAddr, err)
	}
	return loop, func() { loop.Close() }, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("opctl: metrics server stopped: %v", err)
	}
}

func runEventLoop(ctx context.Context, loop *client.EventLoop, collector *metrics.Collector) {
	for {
		ev, err := loop.Poll(ctx)
		if err != nil {
			fmt.Printf("opctl: errored: %v\n", err)
			return
		}

		now := time.Now().Unix()
		if collector != nil {
			if ev.Kind == client.EventIncoming {
				collector.ObserveReceived(ev.Message, now)
			} else {
				collector.ObserveSent(ev.Message, now)
			}
		}

		switch msg := ev.Message.(type) {
		case protocol.MID0002rev1:
			if ev.Kind != client.EventIncoming {
				continue
			}
			fmt.Printf("opctl: connected to %s\n", msg.ControllerName)
			if err := loop.Send(ctx, protocol.MID0010rev1{}); err != nil {
				fmt.Printf("opctl: request parameter sets: %v\n", err)
				return
			}

		case protocol.MID0011rev1:
			if ev.Kind != client.EventIncoming {
				continue
			}
			fmt.Printf("opctl: %d parameter sets available\n", msg.NumberOfParameterSets)
			for _, id := range msg.ParameterSetIDs {
				if err := loop.Send(ctx, protocol.MID0012rev1{ParameterSetID: id}); err != nil {
					fmt.Printf("opctl: request parameter set %d: %v\n", id, err)
					return
				}
			}

		case protocol.MID0013rev1:
			if ev.Kind != client.EventIncoming {
				continue
			}
			fmt.Printf("opctl: parameter set %d: %+v\n", msg.ParameterSetID, msg)

		default:
			mid, rev := ev.Message.MidRevision()
			fmt.Printf("opctl: %s mid=%d rev=%d\n", ev.Kind, mid, rev)
		}
	}
}

// discoverCell looks up every controller endpoint etcd has registered for
// cell, shared by pickControllerAddr (-cell alone) and connect (-cell with
// -vin).
func discoverCell(cell, etcdEndpoints string) ([]registry.ServiceInstance, error) {
	reg, err := registry.NewEtcdRegistry(splitEndpoints(etcdEndpoints))
	if err != nil {
		return nil, err
	}
	instances, err := reg.Discover(cell)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("no controller endpoints registered for cell %q", cell)
	}
	return instances, nil
}

// pickControllerAddr resolves a cell name to a single controller address
// via etcd discovery plus round-robin selection, the registry/loadbalance
// pairing this repo keeps from the teacher for exactly this purpose.
func pickControllerAddr(cell, etcdEndpoints string) (string, error) {
	instances, err := discoverCell(cell, etcdEndpoints)
	if err != nil {
		return "", err
	}
	balancer := &loadbalance.RoundRobinBalancer{}
	instance, err := balancer.Pick(instances)
	if err != nil {
		return "", err
	}
	return instance.Addr, nil
}

func splitEndpoints(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

