package history

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"photo-studio-server/modules/common/config"
)

const snapshotTTL = 7 * 24 * time.Hour

// Snapshot - the persisted shape of one session's history
type Snapshot struct {
	Items   []Item   `json:"items"`
	Folders []Folder `json:"folders"`
}

// Snapshotter - best-effort Redis mirror of history state, so a restarted
// server can hand a returning session its history back. All failures are
// logged and swallowed.
type Snapshotter struct {
	client *redis.Client
}

// NewSnapshotter - connect to Redis if configured; returns nil when Redis
// is not configured or unreachable, and the store runs memory-only.
func NewSnapshotter() *Snapshotter {
	cfg := config.GetConfig()
	if !cfg.RedisEnabled() {
		log.Println("ℹ️ [History] Redis not configured, snapshots disabled")
		return nil
	}

	log.Printf("🔌 [History] Connecting to Redis: %s", cfg.GetRedisAddr())

	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("❌ [History] Redis ping failed, snapshots disabled: %v", err)
		return nil
	}

	log.Println("✅ [History] Redis snapshots enabled")
	return &Snapshotter{client: rdb}
}

func snapshotKey(sessionID string) string {
	return "studio:history:" + sessionID
}

// Save - write one session's history snapshot
func (sn *Snapshotter) Save(sessionID string, snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("⚠️ [History] Snapshot marshal failed for %s: %v", sessionID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sn.client.Set(ctx, snapshotKey(sessionID), data, snapshotTTL).Err(); err != nil {
		log.Printf("⚠️ [History] Snapshot save failed for %s: %v", sessionID, err)
	}
}

// Load - read back one session's history snapshot
func (sn *Snapshotter) Load(sessionID string) (Snapshot, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := sn.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️ [History] Snapshot load failed for %s: %v", sessionID, err)
		}
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("⚠️ [History] Snapshot decode failed for %s: %v", sessionID, err)
		return Snapshot{}, false
	}

	Migrate(snap.Items)
	return snap, true
}
