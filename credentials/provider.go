package credentials

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewProvider builds the provider chain used by every AWS client in this
// project: static keys, optionally exchanged for an assumed role.
func NewProvider(creds Credentials, roleARN, region string) aws.CredentialsProvider {
	staticCredentialsProvider := aws.NewCredentialsCache(
		awscredentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
	)

	if roleARN == "" {
		return staticCredentialsProvider
	}

	stsClient := sts.New(sts.Options{
		Credentials: staticCredentialsProvider,
		Region:      region,
	})

	return aws.NewCredentialsCache(stscreds.NewAssumeRoleProvider(stsClient, roleARN))
}
