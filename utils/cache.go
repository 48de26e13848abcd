package utils

import (
	"context"
	"fmt"
	"time"

	"cabtour/config"

	"github.com/redis/go-redis/v9"
)

var (
	// OTPClient holds sign-in codes and resend cooldowns.
	OTPClient *redis.Client
	// QueueClient points at the notification queue database.
	QueueClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis db %d: %w", db, err)
	}
	return client, nil
}

// InitRedis connects the OTP and queue clients.
func InitRedis() error {
	var err error
	if OTPClient, err = newRedisClient(config.AppConfig.RedisOTPDB); err != nil {
		return err
	}
	if QueueClient, err = newRedisClient(config.AppConfig.RedisQueueDB); err != nil {
		return err
	}
	return nil
}

// CloseRedis closes whichever clients were opened.
func CloseRedis() {
	for _, c := range []*redis.Client{OTPClient, QueueClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
