package dispatcher

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"herald/pkg/command"
	"herald/pkg/logging"
)

// Result reports the outcome of one dispatched invocation.
type Result struct {
	Sender string
	Line   string
	Err    error
}

// Dispatcher runs command lines against a service, either synchronously or
// on a bounded worker pool. The parsing core stays synchronous and unaware;
// asynchrony begins and ends here.
type Dispatcher struct {
	service *command.Service

	workers   int
	queueSize int

	mu      sync.Mutex
	queue   chan Result
	results chan Result
	group   *errgroup.Group
	running bool
}

// New creates a dispatcher. Non-positive workers or queueSize fall back to
// 1 and 16 respectively.
func New(service *command.Service, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 16
	}
	return &Dispatcher{
		service:   service,
		workers:   workers,
		queueSize: queueSize,
	}
}

// Dispatch resolves and executes one line synchronously, returning the
// typed failure if any. Handler panics are already converted to errors by
// the service.
func (d *Dispatcher) Dispatch(sender, line string) error {
	return d.service.Execute(sender, line)
}

// Start spins up the worker pool for asynchronous dispatch. Results arrive
// on the Results channel in completion order.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}

	d.queue = make(chan Result, d.queueSize)
	d.results = make(chan Result, d.queueSize)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(d.workers)
	d.group = group
	d.running = true

	for i := 0; i < d.workers; i++ {
		group.Go(func() error {
			for inv := range d.queue {
				inv.Err = d.service.Execute(inv.Sender, inv.Line)
				select {
				case d.results <- inv:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	logging.Debug("Dispatch", "Started %d workers, queue depth %d", d.workers, d.queueSize)
}

// Submit enqueues one line for asynchronous execution. It blocks when the
// queue is full and fails when the dispatcher is not running.
func (d *Dispatcher) Submit(sender, line string) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("dispatcher is not running")
	}
	queue := d.queue
	d.mu.Unlock()

	queue <- Result{Sender: sender, Line: line}
	return nil
}

// Results delivers the outcomes of submitted invocations. The channel
// closes after Stop once all pending work has drained.
func (d *Dispatcher) Results() <-chan Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.results
}

// Stop closes the queue, waits for in-flight invocations, and closes the
// results channel.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	close(d.queue)
	group := d.group
	results := d.results
	d.mu.Unlock()

	if err := group.Wait(); err != nil {
		logging.Warn("Dispatch", "Worker pool stopped early: %v", err)
	}
	close(results)
}
