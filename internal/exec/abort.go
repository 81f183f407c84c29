package exec

import "sync/atomic"

func newAbortFlag() *atomic.Bool {
	return &atomic.Bool{}
}
