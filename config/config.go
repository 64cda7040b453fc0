package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cppforlife/go-patch/patch"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	StrategySerial   = "serial"
	StrategyParallel = "parallel"

	defaultEnvironmentFlag = "--env"
)

var errNoEnvironments = errors.New("invalid config: no environments declared")

type Config struct {
	Name         string        `yaml:"name"`
	Region       string        `yaml:"region"`
	Deploy       Deploy        `yaml:"deploy"`
	Execution    Execution     `yaml:"execution"`
	Environments []Environment `yaml:"environments"`
}

type Deploy struct {
	Command         string   `yaml:"command"`
	Args            []string `yaml:"args"`
	EnvironmentFlag string   `yaml:"environment_flag"`
}

type Execution struct {
	Strategy    string `yaml:"strategy"`
	MaxInFlight int    `yaml:"max_in_flight"`
}

type Environment struct {
	Name        string      `yaml:"name"`
	Region      string      `yaml:"region"`
	DependsOn   []string    `yaml:"depends_on"`
	Credentials Credentials `yaml:"credentials"`
	Function    *Function   `yaml:"function,omitempty"`
}

// Credentials names the process environment variables a scope is read
// from. The values themselves never appear in the manifest.
type Credentials struct {
	AccessKeyIDFrom     string `yaml:"access_key_id_from"`
	SecretAccessKeyFrom string `yaml:"secret_access_key_from"`
	RoleARN             string `yaml:"role_arn"`
}

type Function struct {
	Name        string   `yaml:"name"`
	Bucket      string   `yaml:"bucket"`
	Key         string   `yaml:"key"`
	SourcePaths []string `yaml:"source_paths"`
	Build       *Build   `yaml:"build,omitempty"`
	Endpoint    string   `yaml:"endpoint"`
}

type Build struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

func Read(filePath string) (Config, error) {
	return ReadWithOps(filePath, nil)
}

// ReadWithOps reads the manifest and applies go-patch ops files to it,
// in order, before parsing and validating.
func ReadWithOps(filePath string, opsFilePaths []string) (Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config")
	}

	for _, opsFilePath := range opsFilePaths {
		data, err = applyOpsFile(data, opsFilePath)
		if err != nil {
			return Config{}, err
		}
	}

	return readConfig(data)
}

func (c Config) LookupEnvironment(name string) (Environment, bool) {
	for _, environment := range c.Environments {
		if environment.Name == name {
			return environment, true
		}
	}
	return Environment{}, false
}

func (c Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for _, environment := range c.Environments {
		names = append(names, environment.Name)
	}
	return names
}

func readConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	applyDefaults(&config)

	if err := validateConfig(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func applyOpsFile(data []byte, opsFilePath string) ([]byte, error) {
	opsData, err := os.ReadFile(opsFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read ops file")
	}

	var opDefs []patch.OpDefinition
	if err := yaml.Unmarshal(opsData, &opDefs); err != nil {
		return nil, errors.Wrapf(err, "invalid ops file '%s'", opsFilePath)
	}

	ops, err := patch.NewOpsFromDefinitions(opDefs)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ops file '%s'", opsFilePath)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	patched, err := ops.Apply(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply ops file '%s'", opsFilePath)
	}

	return yaml.Marshal(patched)
}

func applyDefaults(config *Config) {
	if config.Deploy.EnvironmentFlag == "" {
		config.Deploy.EnvironmentFlag = defaultEnvironmentFlag
	}
	if config.Execution.Strategy == "" {
		config.Execution.Strategy = StrategySerial
	}
	if config.Execution.MaxInFlight == 0 {
		config.Execution.MaxInFlight = 1
	}

	for i := range config.Environments {
		environment := &config.Environments[i]

		if environment.Region == "" {
			environment.Region = config.Region
		}
		if environment.Credentials.AccessKeyIDFrom == "" {
			environment.Credentials.AccessKeyIDFrom = credentialVarName(environment.Name, "AWS_ACCESS_KEY_ID")
		}
		if environment.Credentials.SecretAccessKeyFrom == "" {
			environment.Credentials.SecretAccessKeyFrom = credentialVarName(environment.Name, "AWS_SECRET_ACCESS_KEY")
		}
		if environment.Function != nil && environment.Function.Key == "" && environment.Function.Name != "" {
			environment.Function.Key = environment.Function.Name + ".zip"
		}
	}
}

func credentialVarName(environmentName, suffix string) string {
	prefix := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToUpper(environmentName))
	return prefix + "_" + suffix
}

func validateConfig(config Config) error {
	if len(config.Environments) == 0 {
		return errNoEnvironments
	}

	var emptyFieldNames []string

	if config.Deploy.Command == "" {
		emptyFieldNames = append(emptyFieldNames, "deploy.command")
	}

	for i, environment := range config.Environments {
		label := environment.Name
		if label == "" {
			label = fmt.Sprintf("environments[%d]", i)
			emptyFieldNames = append(emptyFieldNames, label+".name")
		}

		if environment.Region == "" {
			emptyFieldNames = append(emptyFieldNames, label+".region")
		}

		if environment.Function != nil {
			if environment.Function.Name == "" {
				emptyFieldNames = append(emptyFieldNames, label+".function.name")
			}
			if environment.Function.Bucket == "" {
				emptyFieldNames = append(emptyFieldNames, label+".function.bucket")
			}
		}
	}

	if len(emptyFieldNames) > 0 {
		return fmt.Errorf("invalid config: fields %v are empty", emptyFieldNames)
	}

	if config.Execution.Strategy != StrategySerial && config.Execution.Strategy != StrategyParallel {
		return fmt.Errorf("invalid config: execution.strategy must be '%s' or '%s'", StrategySerial, StrategyParallel)
	}

	if config.Execution.MaxInFlight < 1 {
		return errors.New("invalid config: execution.max_in_flight must be at least 1")
	}

	return nil
}
