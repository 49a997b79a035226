package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/marcelsud/hookdash/endpoint"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

/* Cache is a read-through Redis layer in front of an endpoint.Repository
 * Every inbound webhook resolves its endpoint by id, so lookups are served
 * from a hash endpoint:{id}; writes go to the backing store first and then
 * invalidate or adjust the cached copy
 * Invalidation also sets endpoint:{id}:fence for FenceTTL. A miss that read the
 * row before the write landed finds the fence and does not fill
 */

const hashPrefix = "endpoint" // Hash naming: endpoint:{endpoint_id}

// FenceTTL bounds how long a miss may take between reading the row and filling the hash.
const FenceTTL = 5 * time.Second

// fill only when no hash and no fence exist; ARGV[1] is the TTL in milliseconds
var fillScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 or redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV, 2))
redis.call("PEXPIRE", KEYS[1], ARGV[1])
return 1
`)

// bump the cached counter only when the hash is present, never create a partial hash
var incrementScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("HINCRBY", KEYS[1], "request_count", 1)
end
return 0
`)

type Cache struct {
	endpoint.Repository
	Logger zerolog.Logger
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis and wraps next.
func NewCache(next endpoint.Repository, addr, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewCacheWithClient(next, client, ttl), nil
}

func NewCacheWithClient(next endpoint.Repository, client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Repository: next, Logger: zerolog.Nop(), client: client, ttl: ttl}
}

/* Select falls back to the backing store on a miss or on any Redis error
 * A cache outage slows ingestion down but never fails it
 */
func (c *Cache) Select(ctx context.Context, id string) (endpoint.Endpoint, error) {
	data, err := c.client.HGetAll(ctx, key(id)).Result()
	if err == nil && len(data) > 0 {
		if e, ok := decode(data); ok {
			return e, nil
		}
	}

	e, err := c.Repository.Select(ctx, id)
	if err != nil {
		return endpoint.Endpoint{}, err
	}
	c.fill(ctx, e)
	return e, nil
}

/* Update, Delete and IncrementRequestCount succeed once the backing store does
 * Redis failures after that point are logged and left to expire with the TTL
 */
func (c *Cache) Update(ctx context.Context, e endpoint.Endpoint) error {
	if err := c.Repository.Update(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, e.ID)
	return nil
}

func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.Repository.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *Cache) IncrementRequestCount(ctx context.Context, id string) error {
	if err := c.Repository.IncrementRequestCount(ctx, id); err != nil {
		return err
	}
	if err := incrementScript.Run(ctx, c.client, []string{key(id)}).Err(); err != nil {
		c.Logger.Warn().Err(err).Str("endpoint_id", id).Msg("incrementing cached request count")
		c.invalidate(ctx, id)
	}
	return nil
}

// Close closes the Redis connection and the backing repository
func (c *Cache) Close(ctx context.Context) error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("closing Redis client: %w", err)
	}
	return c.Repository.Close(ctx)
}

func (c *Cache) fill(ctx context.Context, e endpoint.Endpoint) {
	fields := encode(e)
	args := make([]interface{}, 0, 1+2*len(fields))
	args = append(args, c.ttl.Milliseconds())
	for k, v := range fields {
		args = append(args, k, v)
	}
	if err := fillScript.Run(ctx, c.client, []string{key(e.ID), fenceKey(e.ID)}, args...).Err(); err != nil {
		c.Logger.Debug().Err(err).Str("endpoint_id", e.ID).Msg("filling endpoint cache")
	}
}

func (c *Cache) invalidate(ctx context.Context, id string) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, fenceKey(id), 1, FenceTTL)
		pipe.Del(ctx, key(id))
		return nil
	})
	if err != nil {
		c.Logger.Error().Err(err).Str("endpoint_id", id).Msg("invalidating cached endpoint")
	}
}

func key(id string) string {
	return fmt.Sprintf("%s:%s", hashPrefix, id)
}

func fenceKey(id string) string {
	return key(id) + ":fence"
}

func encode(e endpoint.Endpoint) map[string]interface{} {
	return map[string]interface{}{
		"id":                    e.ID,
		"owner_id":              e.OwnerID,
		"name":                  e.Name,
		"description":           e.Description,
		"is_active":             strconv.FormatBool(e.Active),
		"response_code":         e.Response.StatusCode,
		"response_body":         e.Response.Body,
		"response_content_type": e.Response.ContentType,
		"request_count":         e.RequestCount,
		"created_at":            e.CreatedAt.UnixNano(),
		"updated_at":            e.UpdatedAt.UnixNano(),
	}
}

func decode(data map[string]string) (endpoint.Endpoint, bool) {
	if data["id"] == "" {
		return endpoint.Endpoint{}, false
	}
	active, err := strconv.ParseBool(data["is_active"])
	if err != nil {
		return endpoint.Endpoint{}, false
	}
	code, err := strconv.Atoi(data["response_code"])
	if err != nil {
		return endpoint.Endpoint{}, false
	}
	return endpoint.Endpoint{
		ID:          data["id"],
		OwnerID:     data["owner_id"],
		Name:        data["name"],
		Description: data["description"],
		Active:      active,
		Response: endpoint.Response{
			StatusCode:  code,
			Body:        data["response_body"],
			ContentType: data["response_content_type"],
		},
		RequestCount: parseInt64(data["request_count"]),
		CreatedAt:    time.Unix(0, parseInt64(data["created_at"])).UTC(),
		UpdatedAt:    time.Unix(0, parseInt64(data["updated_at"])).UTC(),
	}, true
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
