package sync

// FilterNewer passes through only records whose id exceeds maxID. A nil
// maxID means the target table is empty and everything passes. Even
// though since-id pagination already orders records by ascending id,
// every record is tested independently in case the remote returns
// out-of-order data. Input ordering is preserved.
func FilterNewer[T any](in <-chan T, id func(T) int64, maxID *int64) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for record := range in {
			if maxID == nil || id(record) > *maxID {
				out <- record
			}
		}
	}()
	return out
}
