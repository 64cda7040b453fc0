package credentials

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Scope names the variables a credential pair is read from. Each
// environment carries its own scope so a dev run can never pick up
// prod keys.
type Scope struct {
	AccessKeyIDVar     string
	SecretAccessKeyVar string
}

type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

//counterfeiter:generate -o fakes/fake_resolver.go . Resolver
type Resolver interface {
	Resolve(scope Scope) (Credentials, error)
}
