package config

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// RDB dipakai untuk cache menu publik. Boleh nil kalau REDIS_URL kosong,
// handler wajib cek dulu sebelum pakai.
var RDB *redis.Client

func ConnectRedis(redisURL string) {
	if redisURL == "" {
		log.Println("Redis tidak dikonfigurasi, cache menu dimatikan")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Println("Warning: REDIS_URL tidak valid, cache menu dimatikan:", err)
		return
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("Warning: gagal konek Redis, cache menu dimatikan:", err)
		return
	}

	RDB = rdb
	log.Println("Redis connected")
}
