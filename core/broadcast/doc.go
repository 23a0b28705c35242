// Package broadcast
// Author: momentics <momentics@gmail.com>
//
// Fan-out registry for native broadcast notifications. One Registry instance
// exists per notification kind; each holds an independently locked set of
// subscriber queues. Delivery is in publish order, late subscribers never
// observe historical values, and dead subscribers are pruned lazily on the
// next publish that fails to reach them.
package broadcast
