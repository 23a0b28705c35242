// Package dispatch
// Author: momentics <momentics@gmail.com>
//
// Dispatch engine for the poll-driven native notification queue. The Loop
// owns the single dedicated thread that is allowed to touch the native
// poll/drain/teardown calls; every drained record passes through the
// Classifier, which either fetches and completes an asynchronous call result
// or validates the record and routes it to the broadcast registry of its
// kind.
//
// Unsafe reinterpretation of native memory is confined to Record; everything
// downstream of it operates on validated, owned values.
package dispatch
