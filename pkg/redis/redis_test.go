package redis

import (
	"testing"
	"time"

	"github.com/sentriguide/sentriguide-go/internal/config"
)

func TestNewRedisClientUnreachable(t *testing.T) {
	start := time.Now()
	client, err := NewRedisClient(config.RedisConfig{Host: "127.0.0.1", Port: 1})
	if err == nil {
		client.Close()
		t.Fatalf("expected connection error for unreachable address")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("ping must respect the bounded timeout, took %s", elapsed)
	}
}
