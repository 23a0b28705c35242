// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime configuration snapshot and metrics/debug probe layer for the
// steambridge client. Engine components register probes at construction
// time; Stats evaluates every probe into one snapshot for observability
// tooling.
package control
