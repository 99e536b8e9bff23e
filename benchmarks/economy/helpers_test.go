package economy_bench

import "sync/atomic"

func nextUser(counter *int64, users int64) int64 {
	return atomic.AddInt64(counter, 1) % users
}
