package retry

import "s3state/core/storage"

// Do runs op up to budget+1 times. A transient transport error triggers
// another attempt until the budget is exhausted, at which point the last
// error is surfaced. Any other error is fatal immediately. A negative
// budget is treated as zero.
func Do(budget int, op func() error) error {
	if budget < 0 {
		budget = 0
	}

	var lastErr error
	for attempt := 0; attempt <= budget; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !storage.IsTransient(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}
