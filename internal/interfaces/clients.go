package interfaces

import "context"

// MessagePublisher sends a message body with string attributes to a queue
// and returns the message id.
type MessagePublisher interface {
	SendMessage(ctx context.Context, body string, attributes map[string]string) (string, error)
}

// SecretsClient resolves a secret from an ARN variable or a plain fallback
// variable.
type SecretsClient interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error
}
