package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	awspkg "ecommerce-api/pkg/aws"
)

// Config holds all environment variables for the API.
type Config struct {
	Port         string // Service port (default: 8080)
	Env          string // "production" or anything else for development
	JWTSecret    string // JWT secret for authentication
	JWTSecretArn string // Optional Secrets Manager ARN overriding JWTSecret
	KafkaBrokers []string
	KafkaTopic   string // Topic for order.placed events
	RedisURL     string // Optional; empty disables product caching
	S3Bucket     string // Optional; empty disables image upload
	AWSRegion    string
}

// LoadConfig loads environment variables into a Config and validates them.
// When JWT_SECRET_ARN is set, the secret is fetched from Secrets Manager.
func LoadConfig(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTSecretArn: os.Getenv("JWT_SECRET_ARN"),
		KafkaTopic:   os.Getenv("ORDER_EVENTS_TOPIC"),
		RedisURL:     os.Getenv("REDIS_URL"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		AWSRegion:    os.Getenv("AWS_REGION"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "order.placed"
	}

	if cfg.JWTSecretArn != "" {
		awsCfg, err := awspkg.LoadAWSConfig(ctx)
		if err != nil {
			return nil, err
		}
		secret, err := awspkg.NewSecretsClient(awsCfg).GetSecret(ctx, cfg.JWTSecretArn)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
