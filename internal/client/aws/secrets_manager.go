package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/taxpro/taxpro-api/internal/logger"
	"go.uber.org/zap"
)

// SecretsManagerAPI is the part of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager with a
// plain environment variable fallback for local runs.
type SecretsManagerClient struct {
	svc SecretsManagerAPI
}

// NewSecretsManagerClient uses the default AWS configuration chain.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

func NewSecretsManagerClientWithAPI(api SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: api}
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArnEnvVar string) (string, bool) {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return "", false
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.Error(err))
		return "", false
	}

	logger.Log.Debug("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
	return *result.SecretString, true
}

// GetSecretString reads the secret whose ARN is in secretArnEnvVar, falling
// back to the value of fallbackEnvVar.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if value, ok := c.fetch(ctx, secretArnEnvVar); ok {
		return value, nil
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON decodes a JSON secret into target. The fallback variable,
// when set, must hold the same JSON document.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error {
	raw, err := c.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("secret from '%s' is not valid JSON: %w", secretArnEnvVar, err)
	}
	return nil
}
