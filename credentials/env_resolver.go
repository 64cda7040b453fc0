package credentials

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

type EnvResolver struct {
}

func NewEnvResolver() EnvResolver {
	return EnvResolver{}
}

func (r EnvResolver) Resolve(scope Scope) (Credentials, error) {
	var missing []string

	accessKeyID := os.Getenv(scope.AccessKeyIDVar)
	if accessKeyID == "" {
		missing = append(missing, scope.AccessKeyIDVar)
	}

	secretAccessKey := os.Getenv(scope.SecretAccessKeyVar)
	if secretAccessKey == "" {
		missing = append(missing, scope.SecretAccessKeyVar)
	}

	if len(missing) > 0 {
		return Credentials{}, errors.Errorf("environment variables not set: %s", strings.Join(missing, ", "))
	}

	return Credentials{AccessKeyID: accessKeyID, SecretAccessKey: secretAccessKey}, nil
}
