package packager

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const timestampFormat = "2006/01/02 15:04:05 MST"

// Metadata records what a packaging run produced and where it went.
type Metadata struct {
	Project     string `yaml:"project,omitempty"`
	Function    string `yaml:"function"`
	Environment string `yaml:"environment"`
	Bucket      string `yaml:"bucket"`
	Key         string `yaml:"key"`
	SHA256      string `yaml:"sha256"`
	Size        int    `yaml:"size"`
	CreatedAt   string `yaml:"created_at"`
}

func SaveMetadata(path string, metadata Metadata) error {
	contents, err := yaml.Marshal(metadata)
	if err != nil {
		return errors.Wrap(err, "could not marshal artifact metadata")
	}

	if err := os.WriteFile(path, contents, 0600); err != nil {
		return errors.Wrap(err, "could not write artifact metadata")
	}

	return nil
}

func ReadMetadata(path string) (Metadata, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, errors.Wrap(err, "could not read artifact metadata")
	}

	var metadata Metadata
	if err := yaml.Unmarshal(contents, &metadata); err != nil {
		return Metadata{}, errors.Wrap(err, "could not parse artifact metadata")
	}

	return metadata, nil
}
