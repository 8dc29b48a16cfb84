package awsclient

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

type Config struct {
	AccessKey string
	SecretKey string
	Region    string
}

// NewSession builds the shared AWS session from injected static credentials.
// Built once at boot and handed to each service client; nothing in this package
// reads the environment.
func NewSession(cfg Config) (*session.Session, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("aws access key and secret key must be set")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("aws region must be set")
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:      aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to create aws session: %w", err)
	}
	return sess, nil
}
