package database

import (
	"context"
	"fmt"
	"time"

	"github.com/hypernova-labs/garage-service/internal/config"
	"github.com/redis/go-redis/v9"
)

// Redis representa la conexión a Redis
type Redis struct {
	*redis.Client
}

// ConnectRedis establece la conexión a Redis
func ConnectRedis(cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   3,
	})

	// Verificar conexión
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error pinging Redis: %w", err)
	}

	return &Redis{client}, nil
}

// Close cierra la conexión a Redis
func (r *Redis) Close() error {
	return r.Client.Close()
}

// HealthCheck verifica la salud de Redis
func (r *Redis) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.Ping(ctx).Err()
}

// IncrWindow incrementa un contador con ventana de expiración. El
// incremento y el TTL van en la misma transacción, y el TTL se fija
// solo si la clave no tiene uno, así un contador que quedó sin
// expiración en algún fallo anterior la recupera en el siguiente
// incremento.
func (r *Redis) IncrWindow(key string, ttl time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipe := r.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return incr.Val(), nil
}
