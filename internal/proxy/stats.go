package proxy

import "sync/atomic"

type Stats struct {
	Relayed  atomic.Int64
	Failed   atomic.Int64
	NotFound atomic.Int64
	Bytes    atomic.Int64
}
