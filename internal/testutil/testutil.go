// Package testutil provides testing utilities and helpers shared across packages.
package testutil

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultTestRedisDB keeps test data away from DB 0, which a local dev server uses.
const defaultTestRedisDB = 9

// candidateRedisAddrs are probed in order when REDIS_ADDR is unset:
// the compose service name in CI, then a local server.
var candidateRedisAddrs = []string{"redis:6379", "localhost:6379"}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func testRedisDB() int {
	if v, err := strconv.Atoi(os.Getenv("TEST_REDIS_DB")); err == nil && v >= 0 {
		return v
	}
	return defaultTestRedisDB
}

func ping(addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// SetupTestRedis returns a client on an emptied test DB. The test is skipped
// when no server answers, or fails when TEST_REQUIRE_REDIS is set.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	addrs := candidateRedisAddrs
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		addrs = []string{addr}
	}

	db := testRedisDB()
	for _, addr := range addrs {
		client, err := ping(addr, db)
		if err != nil {
			t.Logf("redis not available at %s: %v", addr, err)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = client.FlushDB(ctx).Err()
		cancel()
		if err != nil {
			_ = client.Close()
			t.Fatalf("flush test redis db %d: %v", db, err)
		}
		t.Cleanup(func() {
			if cerr := client.Close(); cerr != nil {
				t.Logf("close redis client: %v", cerr)
			}
		})
		return client
	}

	if envBool("TEST_REQUIRE_REDIS") {
		t.Fatal("redis not available for testing")
	}
	t.Skip("redis not available for testing")
	return nil
}
