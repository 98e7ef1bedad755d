package config
import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pbridge/cryptography"
	"pbridge/util"
)

/*
 * Server configuration - configuration of local encoding API server.
 * timeouts are in milliseconds.
 */
type ServerConfiguration struct {
	Address		string	`yaml:"address"`
	ReadTimeout	uint	`yaml:"read_timeout_ms"`
	WriteTimeout	uint	`yaml:"write_timeout_ms"`
	MaxBodyBytes	int64	`yaml:"max_body_bytes"`
}

/*
 * which patterns are served and how they look. an empty `Enabled` list
 * enables everything, `Filler` replaces the default marker of the
 * indentation pattern with cover lines.
 */
type PatternsConfig struct {
	Enabled		[]string	`yaml:"enabled"`
	Filler		[]string	`yaml:"filler"`
}

type FullConfig struct {
	ServerConfig	ServerConfiguration	`yaml:"server_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
	Patterns	PatternsConfig		`yaml:"patterns_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		ServerConfig: ServerConfiguration{
			Address: "127.0.0.1:5180",
			ReadTimeout: 5000,
			WriteTimeout: 5000,
			MaxBodyBytes: 1 << 20,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning | util.Info,
		},
		Patterns: PatternsConfig{
			Enabled: []string{},
			Filler: []string{},
		},
	}
}

func(c *FullConfig) Validate() error {
	if strings.TrimSpace( c.ServerConfig.Address ) == "" {
		return fmt.Errorf("server address is not set")
	}
	if c.ServerConfig.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.ServerConfig.MaxBodyBytes)
	}
	for i, line := range c.Patterns.Filler {
		if line == "" {
			return fmt.Errorf("filler line %d is empty", i)
		}
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * missing fields keep their default values. sealed files need a password,
 * plain ones ignore it.
 */
func LoadConfig( filename string, password []byte ) (*FullConfig, error) {
	data, err := LoadSealed( filename, password )
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig( filename string, password []byte, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return SaveSealed( filename, password, data )
}

/*
 * Functions for saving and loading sealed files.
 */
func LoadSealed( filename string, password []byte ) ([]byte, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	if cryptography.IsSealed( data ) {
		if len(password) == 0 {
			return nil, fmt.Errorf("%s is sealed, a password is required", filename)
		}
		return cryptography.Open( data, password )
	}
	// return unsealed data
	return data, nil
}

func SaveSealed( filename string, password, data []byte ) error {
	var err error
	if len(password) > 0 {
		data, err = cryptography.Seal( data, password )
		if err != nil {
			return err
		}
	}
	return os.WriteFile( filename, data, 0600 )
}

func IsSealed( filename string ) (bool, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return false, err
	}
	return cryptography.IsSealed( data ), nil
}
