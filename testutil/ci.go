package testutil

import (
	"os"
	"testing"
)

const envUseCI = "MASS_CI"

// SkipCI skips tests that need minutes and gigabytes unless MASS_CI is set.
func SkipCI(t *testing.T) {
	t.Helper()
	if os.Getenv(envUseCI) == "" {
		t.Skip("skip long test outside MASS CI")
	}
}
