package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
)

type view struct {
	Label string `json:"label"`
	Total string `json:"total"`
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	c := NewRedisCache(client, time.Minute)
	owner := uuid.New()

	var got view
	hit, err := c.Get(ctx, owner, "summary:2024-03", &got)
	if err != nil || hit {
		t.Fatalf("Get() on empty cache = %v, %v", hit, err)
	}

	if err := c.Set(ctx, owner, 0, "summary:2024-03", view{Label: "Março 2024", Total: "10.00"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	hit, err = c.Get(ctx, owner, "summary:2024-03", &got)
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v", hit, err)
	}
	if got.Label != "Março 2024" || got.Total != "10.00" {
		t.Errorf("Get() decoded %+v", got)
	}

	key := Key(owner, "summary:2024-03")
	if ttl := server.TTL(key); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	server.FastForward(2 * time.Minute)
	if hit, _ := c.Get(ctx, owner, "summary:2024-03", &got); hit {
		t.Error("expired view still served")
	}
}

func TestRedisCache_InvalidateOwner(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	c := NewRedisCache(client, 0)
	owner, other := uuid.New(), uuid.New()

	for i := 0; i < 250; i++ {
		if err := c.Set(ctx, owner, 0, uuid.NewString(), view{}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if err := c.Set(ctx, other, 0, "goals", view{Label: "kept"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := c.InvalidateOwner(ctx, owner); err != nil {
		t.Fatalf("InvalidateOwner() error = %v", err)
	}

	if keys := viewKeys(server); len(keys) != 1 || keys[0] != Key(other, "goals") {
		t.Errorf("remaining keys = %v", keys)
	}
	if gen, err := c.Generation(ctx, owner); err != nil || gen != 1 {
		t.Errorf("Generation() = %d, %v, want 1", gen, err)
	}
}

// viewKeys lists cached views, leaving out generation counters.
func viewKeys(server *miniredis.Miniredis) []string {
	var keys []string
	for _, k := range server.Keys() {
		if strings.Count(k, ":") >= 2 {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestRedisCache_SetSkipsStaleGeneration(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	c := NewRedisCache(client, time.Minute)
	owner := uuid.New()

	gen, err := c.Generation(ctx, owner)
	if err != nil || gen != 0 {
		t.Fatalf("Generation() = %d, %v", gen, err)
	}

	// A write lands while the view is being computed.
	if err := c.InvalidateOwner(ctx, owner); err != nil {
		t.Fatalf("InvalidateOwner() error = %v", err)
	}
	if err := c.Set(ctx, owner, gen, "summary:2024-03", view{Label: "stale"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if server.Exists(Key(owner, "summary:2024-03")) {
		t.Fatal("view computed before the invalidation was stored")
	}

	current, err := c.Generation(ctx, owner)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, owner, current, "summary:2024-03", view{Label: "fresh"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	var got view
	if hit, err := c.Get(ctx, owner, "summary:2024-03", &got); !hit || err != nil || got.Label != "fresh" {
		t.Errorf("Get() = %v, %v, %+v", hit, err, got)
	}
}

func TestRedisCache_GetFailsOnClosedClient(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisCache(client, time.Minute)
	_ = client.Close()

	var got view
	if _, err := c.Get(context.Background(), uuid.New(), "goals", &got); err == nil {
		t.Error("expected error from closed client")
	}
}

func TestNewRedisClient(t *testing.T) {
	server, _ := newTestRedis(t)

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	_ = client.Close()

	if _, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "not a url"}); err == nil {
		t.Error("expected error for invalid url")
	}
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()
	owner := uuid.New()

	_ = c.Set(ctx, owner, 0, "goals", view{Label: "x"})
	var got view
	if hit, err := c.Get(ctx, owner, "goals", &got); hit || err != nil {
		t.Errorf("Get() = %v, %v", hit, err)
	}
	if err := c.InvalidateOwner(ctx, owner); err != nil {
		t.Errorf("InvalidateOwner() error = %v", err)
	}
}
