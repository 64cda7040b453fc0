package functions

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_client.go . Client

// UpdateResult reports what the function service accepted.
type UpdateResult struct {
	CodeSha256 string
	Version    string
}

type Client interface {
	UpdateCode(functionName, bucket, key string) (UpdateResult, error)
}

type LambdaClient struct {
	lambdaClient *lambda.Client
}

func NewLambdaClient(creds credentials.Credentials, roleARN, region, endpoint string) *LambdaClient {
	options := lambda.Options{
		Credentials: credentials.NewProvider(creds, roleARN, region),
		Region:      region,
	}

	if endpoint != "" {
		options.BaseEndpoint = aws.String(endpoint)
	}

	return &LambdaClient{lambdaClient: lambda.New(options)}
}

// UpdateCode points the function at a new code object in S3.
func (c *LambdaClient) UpdateCode(functionName, bucket, key string) (UpdateResult, error) {
	output, err := c.lambdaClient.UpdateFunctionCode(context.TODO(), &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(functionName),
		S3Bucket:     aws.String(bucket),
		S3Key:        aws.String(key),
	})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("could not update code for function %s: %s", functionName, err)
	}

	return UpdateResult{
		CodeSha256: aws.ToString(output.CodeSha256),
		Version:    aws.ToString(output.Version),
	}, nil
}
