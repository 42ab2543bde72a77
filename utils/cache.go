// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"trabby/config"

	"github.com/go-redis/redis/v8"
)

// WizardCacheClient is the dedicated client for wizard session storage.
var WizardCacheClient *redis.Client

// InitWizardCache initializes the Redis client that holds in-flight wizard
// sessions (using the DB from AppConfig reserved for wizard state).
func InitWizardCache() {
	WizardCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWizardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := WizardCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Wizard Cache): %v", err)
	}
}

// GetWizardCacheClient returns the wizard session cache client.
func GetWizardCacheClient() *redis.Client {
	if WizardCacheClient == nil {
		InitWizardCache()
	}
	return WizardCacheClient
}
