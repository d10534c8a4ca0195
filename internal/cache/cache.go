package cache

import (
	"context"
	"errors"
	"log"
	"os"
	"time"
)

const (
	// Clé et durée de vie du catalogue produits
	CatalogKey = "data"
	CatalogTTL = 300 * time.Second
)

// ErrMiss signale une clé absente ou expirée.
var ErrMiss = errors.New("cache: clé absente")

// Store est le contrat du cache injecté dans les handlers :
// lecture, écriture avec expiration, invalidation et compteur à fenêtre fixe.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Shared est le Store du processus, choisi par Init au démarrage.
var Shared Store

// Init sélectionne l'implémentation : Redis si REDIS_HOST est défini,
// sinon un cache mémoire local (même sémantique, non partagé).
func Init() error {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		Shared = NewMemory()
		log.Println("⚠️ REDIS_HOST absent — cache mémoire local utilisé")
		return nil
	}

	store, err := NewRedis(redisHost, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		return err
	}
	Shared = store
	log.Println("✅ Redis connecté avec succès")
	return nil
}
