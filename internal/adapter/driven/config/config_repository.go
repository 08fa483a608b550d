package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/pd-payroll-go/internal/domain/repository"
	"github.com/diillson/pd-payroll-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// AppName é o nome do diretório de configuração.
const AppName = "pd-payroll"

// ConfigRepositoryImpl implementa o ConfigRepository sobre um arquivo TOML, YAML ou JSON.
type ConfigRepositoryImpl struct {
	path string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
// Um caminho vazio usa DefaultPath.
func NewConfigRepository(path string) (repository.ConfigRepository, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := formatOf(path); err != nil {
		return nil, err
	}

	return &ConfigRepositoryImpl{path: path}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/pd-payroll/config.json, falling back to ~/.config.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, "config.json"), nil
}

// Path returns the config file location.
func (r *ConfigRepositoryImpl) Path() string {
	return r.path
}

// Load lê o arquivo de configuração, criando um arquivo vazio se ele não existir.
func (r *ConfigRepositoryImpl) Load() (*types.Config, error) {
	fileInfo, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := &types.Config{}
		if err := r.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", r.path)
	}

	fileData, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config
	if len(strings.TrimSpace(string(fileData))) == 0 {
		return &config, nil
	}

	format, _ := formatOf(r.path)
	switch format {
	case "toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case "json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	}

	return &config, nil
}

// Save grava a configuração no formato indicado pela extensão do arquivo.
func (r *ConfigRepositoryImpl) Save(cfg *types.Config) error {
	if cfg == nil {
		cfg = &types.Config{}
	}

	var (
		data []byte
		err  error
	)

	format, _ := formatOf(r.path)
	switch format {
	case "toml":
		data, err = toml.Marshal(*cfg)
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// o token fica no arquivo, então só o dono pode ler
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Clear remove um campo da configuração. types.ClearAll ou vazio remove o arquivo inteiro.
func (r *ConfigRepositoryImpl) Clear(field string) error {
	if field == "" || field == types.ClearAll {
		if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error removing config file: %w", err)
		}
		return nil
	}

	cfg, err := r.Load()
	if err != nil {
		return err
	}

	switch field {
	case types.ConfigFieldToken:
		cfg.Token = ""
	case types.ConfigFieldRate:
		cfg.DefaultRate = 0
	case types.ConfigFieldSchedule:
		cfg.DefaultSchedule = ""
	case types.ConfigFieldTimezone:
		cfg.Timezone = ""
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", types.ErrUnknownConfigKey, field, strings.Join(types.ConfigFields, ", "))
	}

	return r.Save(cfg)
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported config file format: %s", filepath.Ext(path))
	}
}
