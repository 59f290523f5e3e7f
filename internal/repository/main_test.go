//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/threadline/bagging-service/internal/testutil"
)

// TestMain shares one MongoDB container across every integration test in
// this package; starting a container per test would dominate the run time.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongo(context.Background(), m))
}
