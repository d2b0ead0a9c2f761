package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Portal-empleo-api/pkg/config"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// Cache adaptador go-redis para el caché de la aplicación. Es opcional: si Redis no
// responde al arranque, la app sigue sin caché y cada lectura va a la base de datos.
type Cache struct {
	client *redis.Client
	log    *logger.Logger
}

// New conecta a Redis y verifica con un ping. Devuelve nil (sin error) si REDIS_ADDR
// está vacío o el ping falla: el caller trata un caché nil como ausencia de caché.
func New(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) *Cache {
	if cfg.Addr == "" {
		log.Info().Msg("Redis no configurado, caché deshabilitado")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis no disponible, caché deshabilitado")
		_ = client.Close()
		return nil
	}
	log.Info().Str("addr", cfg.Addr).Msg("Redis conectado")
	return &Cache{client: client, log: log}
}

// Get devuelve el valor y true si la clave existe. Errores de red degradan a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("fallo leyendo caché")
		}
		return "", false
	}
	return val, true
}

// Set guarda el valor con TTL. Best effort: un fallo solo se registra.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("fallo escribiendo caché")
	}
}

// Delete invalida claves. Best effort.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("fallo invalidando caché")
	}
}

// Close cierra la conexión subyacente.
func (c *Cache) Close() error {
	return c.client.Close()
}
