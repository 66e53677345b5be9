package cmd

import (
	"os"
	"strings"

	"k8s.io/apimachinery/pkg/util/yaml"

	"github.com/ink8bit/deby/pkg/airutil"
	v1 "github.com/ink8bit/deby/pkg/api/v1"
	"github.com/ink8bit/deby/pkg/config"
)

const (
	flagConfig  = "config"
	flagVersion = "new-version"
	flagChanges = "changes"
	flagField   = "field"
)

// readConfig loads and resolves the configuration file. Environment
// variable references in the file body are expanded before decoding.
func readConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	expanded := airutil.ExpandEnv(string(data))

	var raw v1.Config
	if err := yaml.NewYAMLOrJSONDecoder(strings.NewReader(expanded), 4).Decode(&raw); err != nil {
		return nil, err
	}
	return config.Resolve(raw)
}
