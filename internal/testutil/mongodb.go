//go:build integration

// Package testutil provides MongoDB testcontainer helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoContainer is a running MongoDB testcontainer together with its
// connection URI.
type MongoContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongo starts a MongoDB container and resolves its connection string.
func StartMongo(ctx context.Context) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoContainer{Container: container, URI: uri}, nil
}

// Terminate stops and removes the container.
func (c *MongoContainer) Terminate(ctx context.Context) error {
	if c.Container == nil {
		return nil
	}
	if err := c.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}

var (
	sharedMongo     *MongoContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once
)

// RunWithSharedMongo starts one MongoDB container for the whole test binary,
// runs the tests, then tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongo(context.Background(), m))
//	}
//
// Tests isolate themselves by connecting to distinct database names, see
// UniqueDBName.
func RunWithSharedMongo(ctx context.Context, m *testing.M) int {
	sharedMongoOnce.Do(func() {
		sharedMongo, sharedMongoErr = StartMongo(ctx)
	})
	if sharedMongoErr != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", sharedMongoErr)
		return 1
	}

	code := m.Run()

	if err := sharedMongo.Terminate(ctx); err != nil {
		// Docker reaps the container eventually, so only warn.
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the connection URI of the container started by
// RunWithSharedMongo. It panics when called outside that lifecycle.
func SharedMongoURI() string {
	if sharedMongo == nil {
		panic("testutil: shared MongoDB container not running; use RunWithSharedMongo in TestMain")
	}
	return sharedMongo.URI
}

// UniqueDBName derives a valid, unique MongoDB database name from a test
// name, so tests sharing one container do not see each other's data.
func UniqueDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
