// File: core/callresult/pending.go
// Package callresult correlates async native calls with awaiting futures.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package callresult

import (
	"context"
	"fmt"

	"github.com/momentics/steambridge/driver"
)

// ErrTableClosed is returned by Wait once the owning table has shut down
// without delivering the result.
var ErrTableClosed = fmt.Errorf("call-result table is closed")

// Pending is the awaiting side of one registered call. It is consumed at
// most once.
type Pending struct {
	handle driver.CallHandle
	result chan []byte
	done   chan struct{}
	table  *Table
}

// Handle returns the native call handle this future is bound to.
func (p *Pending) Handle() driver.CallHandle {
	return p.handle
}

// Wait blocks until the dispatch thread delivers the result bytes, the table
// shuts down, or ctx is done. Cancellation abandons the entry; a result that
// arrives afterwards is discarded by the table as an orphan. In every race a
// result already delivered wins over the failure path.
func (p *Pending) Wait(ctx context.Context) ([]byte, error) {
	select {
	case data := <-p.result:
		return data, nil
	case <-p.done:
		select {
		case data := <-p.result:
			return data, nil
		default:
		}
		return nil, ErrTableClosed
	case <-ctx.Done():
		p.table.abandon(p)
		select {
		case data := <-p.result:
			return data, nil
		default:
		}
		return nil, ctx.Err()
	}
}
