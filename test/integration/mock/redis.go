package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *Redis

// Redis pairs a client with the in-process server behind it.
type Redis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

func NewRedis() *Redis {
	redisConnOnce.Do(
		func() {
			redisConn = openRedisConn()
		},
	)

	return redisConn
}

func openRedisConn() *Redis {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return &Redis{Client: conn, Server: miniRedis}
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}
