package redisStore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akolanti/RagWeb/internal/data/redisStore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestIncrWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	store := redisStore.NewTestStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.IncrWindow(ctx, "ratelimit:1.2.3.4:100", time.Second)
		if err != nil {
			t.Fatalf("IncrWindow failed: %v", err)
		}
		if got != want {
			t.Errorf("count got %d, want %d", got, want)
		}
	}

	if ttl := mr.TTL("ratelimit:1.2.3.4:100"); ttl <= 0 || ttl > time.Second {
		t.Errorf("unexpected ttl %v", ttl)
	}

	mr.FastForward(2 * time.Second)
	if mr.Exists("ratelimit:1.2.3.4:100") {
		t.Error("window key should have expired")
	}
}

func TestIncrWindow_Race(t *testing.T) {
	mr := miniredis.RunT(t)
	store := redisStore.NewTestStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.IncrWindow(context.Background(), "shared", time.Minute); err != nil {
				t.Errorf("IncrWindow failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got, _ := mr.Get("shared"); got != "25" {
		t.Errorf("counter got %s, want 25", got)
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	store, err := redisStore.Connect(context.Background(), addr, "", 0)
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if n, err := store.IncrWindow(context.Background(), "k", time.Second); err != nil || n != 1 {
		t.Errorf("IncrWindow got %d %v", n, err)
	}

	mr.Close()
	if _, err := redisStore.Connect(context.Background(), addr, "", 0); err == nil {
		t.Error("expected an error once redis is gone")
	}
}
