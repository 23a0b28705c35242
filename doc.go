// Package steambridge
// Author: momentics <momentics@gmail.com>
//
// steambridge turns the poll-driven, single-threaded native Steam flat API
// into a safe concurrent Go surface. One dedicated polling thread owns every
// non-thread-safe native entry point; everything the rest of the process sees
// goes through two decoupling primitives:
//
//   - broadcast registries fan multi-consumer notifications (persona state,
//     platform shutdown requests) out to subscriptions, and
//   - a call-result table correlates asynchronous native calls with the
//     goroutine awaiting each one, delivering every result exactly once.
//
// A process holds at most one live Client. Init claims the native API,
// Close releases it through a two-stage handshake that guarantees the
// polling thread has fully quiesced before native teardown begins.
package steambridge
