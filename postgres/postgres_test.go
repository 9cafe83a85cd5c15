package postgres

import (
	"fmt"
	"testing"
)

func TestRetryBootstrap_RetriesFailedAttempts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping backoff test in short mode")
	}

	attempts := 0

	err := retryBootstrap(func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: [%v]", err)
	}

	expectedAttempts := 3
	if attempts != expectedAttempts {
		t.Errorf(
			"unexpected attempts count\n"+
				"expected: [%v]\n"+
				"actual:   [%v]",
			expectedAttempts,
			attempts,
		)
	}
}
