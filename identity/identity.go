package identity

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/visual-utils/lambda-deploy-and-promote/credentials"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_verifier.go . Verifier

// Identity is the caller a credential scope authenticates as.
type Identity struct {
	Account string
	ARN     string
}

type Verifier interface {
	WhoAmI(creds credentials.Credentials, roleARN, region string) (Identity, error)
}

// STSVerifier asks STS who a credential scope authenticates as. A
// non-empty Endpoint overrides the service endpoint, for local fakes.
type STSVerifier struct {
	Endpoint string
}

func NewSTSVerifier() STSVerifier {
	return STSVerifier{}
}

func (v STSVerifier) WhoAmI(creds credentials.Credentials, roleARN, region string) (Identity, error) {
	options := sts.Options{
		Credentials: credentials.NewProvider(creds, roleARN, region),
		Region:      region,
	}

	if v.Endpoint != "" {
		options.BaseEndpoint = aws.String(v.Endpoint)
	}

	client := sts.New(options)

	output, err := client.GetCallerIdentity(context.TODO(), &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, fmt.Errorf("could not get caller identity: %s", err)
	}

	return Identity{
		Account: aws.ToString(output.Account),
		ARN:     aws.ToString(output.Arn),
	}, nil
}
