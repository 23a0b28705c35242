// Package callresult
// Author: momentics <momentics@gmail.com>
//
// Correlation table matching one outstanding asynchronous native call to the
// single future awaiting its result. The table is payload-agnostic: results
// travel as raw bytes and the awaiting caller reinterprets them as its
// expected fixed-size structure.
//
// Registration runs the native issue call under the table lock, so the entry
// is observable before the dispatch thread can possibly process the
// completion notice. Completion removes the entry in the same critical
// section that delivers, giving exactly-once semantics; completions with no
// matching entry are logged and dropped.
package callresult
