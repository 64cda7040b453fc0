package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_client.go . Client

// Client stores and fetches artifact objects.
type Client interface {
	Put(bucket, key string, body io.Reader, length int64) error
	Get(bucket, key string) ([]byte, error)
}

type S3Client struct {
	S3Client *s3.Client
}

// NewS3Client builds a client for one credential scope. A non-empty
// endpoint switches to path-style addressing, for local fakes.
func NewS3Client(creds credentials.Credentials, roleARN, region, endpoint string) *S3Client {
	options := s3.Options{
		Credentials: credentials.NewProvider(creds, roleARN, region),
		Region:      region,
	}

	if endpoint != "" {
		options.BaseEndpoint = aws.String(endpoint)
		options.UsePathStyle = true
	}

	return &S3Client{S3Client: s3.New(options)}
}

// NewDefaultChainClient resolves credentials through the runtime's
// default chain, for execution inside the function service.
func NewDefaultChainClient() (*S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, errors.Wrap(err, "could not load default credential chain")
	}

	return &S3Client{S3Client: s3.NewFromConfig(cfg)}, nil
}

func (c *S3Client) Put(bucket, key string, body io.Reader, length int64) error {
	_, err := c.S3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		ACL:           types.ObjectCannedACLPrivate,
		Body:          body,
		ContentLength: &length,
	})
	if err != nil {
		return fmt.Errorf("could not put object '%s' into bucket %s: %s", key, bucket, err)
	}

	return nil
}

func (c *S3Client) Get(bucket, key string) ([]byte, error) {
	output, err := c.S3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("could not get object '%s' from bucket %s: %s", key, bucket, err)
	}
	defer output.Body.Close()

	contents, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read object '%s' from bucket %s: %s", key, bucket, err)
	}

	return contents, nil
}
