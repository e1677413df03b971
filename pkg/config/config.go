// package config stores user settings for kmerge,
// such as which kubeconfig to edit when --config
// is not passed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/imdario/mergo"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/common-fate/kmerge/internal/build"
)

type Config struct {
	// KubeconfigPath is the kubeconfig edited when neither --config
	// nor KMERGE_KUBECONFIG is set.
	KubeconfigPath string `toml:",omitempty"`

	// Set this to true to take a backup on every run, as if --backup was passed.
	// The backup is still only written once.
	AlwaysBackup bool `toml:",omitempty"`
}

// NewDefaultConfig returns the built-in settings.
func NewDefaultConfig() Config {
	return Config{
		KubeconfigPath: clientcmd.RecommendedHomeFile,
	}
}

func KmergeConfigFolder() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(home, build.ConfigFolderName)
	if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); !pathExists(configDir) && xdgConfigDir != "" {
		configDir = filepath.Join(xdgConfigDir, "kmerge")
	}

	return configDir, nil
}

func KmergeConfigFilePath() (string, error) {
	folder, err := KmergeConfigFolder()
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, "config.toml"), nil
}

// pathExists checks if a given file exists and returns true or false
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the settings file, falling back to NewDefaultConfig for
// anything it does not set. A missing file is not an error.
func Load() (*Config, error) {
	configFilePath, err := KmergeConfigFilePath()
	if err != nil {
		return nil, err
	}

	var c Config
	_, err = toml.DecodeFile(configFilePath, &c)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading settings %q: %w", configFilePath, err)
	}

	if err := mergo.Merge(&c, NewDefaultConfig()); err != nil {
		return nil, err
	}
	return &c, nil
}
