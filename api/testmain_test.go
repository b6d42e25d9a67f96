package api_test

import (
	"testing"

	"go.uber.org/goleak"
)

// verify no goroutine leaks across tests in this package
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
