package errutil

import "fmt"

// Maybe wraps err with msg, or returns nil when err is nil.
func Maybe(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
