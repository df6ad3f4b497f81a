package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestOpenRedis_Success(t *testing.T) {
	// Start in-memory Redis
	s := miniredis.RunT(t)
	defer s.Close()

	log, hook := test.NewNullLogger()

	// Use a non-zero DB to verify it's set
	c, err := OpenRedis(context.Background(), s.Addr(), 2, log)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "k").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "v" {
		t.Fatalf("GET value = %q, want %q", v, "v")
	}

	last := hook.LastEntry()
	if last == nil || last.Level != logrus.InfoLevel || last.Data["addr"] != s.Addr() {
		t.Fatalf("unexpected log entry: %+v", last)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	log, _ := test.NewNullLogger()
	// Unresolvable host: Ping should fail immediately (no 5s delay)
	if _, err := OpenRedis(context.Background(), "not-a-real-host:6379", 0, log); err == nil {
		t.Fatal("expected error, got nil")
	}
}
