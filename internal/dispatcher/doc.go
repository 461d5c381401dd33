// Package dispatcher coordinates handler execution for herald.
//
// The resolution core is strictly synchronous: it parses, resolves, and
// invokes in the caller's goroutine. The dispatcher adds the execution
// policies a host application needs on top of that: a passthrough
// synchronous Dispatch for interactive use, and a bounded worker pool for
// sources that must not block on slow handlers (chat bridges, network
// frontends). Outcomes of asynchronous invocations are reported on a
// results channel in completion order.
//
// Handler panics never escape: the command service converts them into
// execution failures before they reach the dispatcher.
package dispatcher
