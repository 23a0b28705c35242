// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementation of the native driver for testing and development.
// It reproduces the flat API's observable behavior: notifications queue up
// behind RunFrame, drain one at a time with an explicit free step, and
// asynchronous calls complete through the fetch-by-handle path on a later
// frame. Every native entry point appends to a call log so tests can assert
// ordering properties such as "no poll after shutdown".
package fake
