// Package dynamodb keeps the address book as one item per contact in a
// single table. The client works against real AWS or a local endpoint
// (dynamodb-local, localstack) via Options.Endpoint.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
}

// NewClient opens a DynamoDB client. Static credentials are optional; when
// none are given the default AWS credential chain applies.
func NewClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	if strings.TrimSpace(opts.Region) == "" {
		return nil, errors.New("dynamodb: region is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" || opts.SecretKey != "" || opts.SessionToken != "" {
		if opts.AccessKey == "" || opts.SecretKey == "" {
			return nil, errors.New("dynamodb: access key and secret key must be set together")
		}
		provider := credentials.NewStaticCredentialsProvider(
			opts.AccessKey, opts.SecretKey, opts.SessionToken,
		)
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(provider))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}
