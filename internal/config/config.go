// Package config loads daikinctl settings from a YAML file, a .env file and
// DAIKIN_* environment variables.
package config

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jattkaim/daikinhttp"
)

const envPrefix = "DAIKIN"

type Config struct {
	Host    string        `mapstructure:"host"`
	Timeout time.Duration `mapstructure:"timeout"`
	HTTPS   bool          `mapstructure:"https"`
	UUID    string        `mapstructure:"uuid"`

	Log  LogConfig  `mapstructure:"log"`
	MQTT MQTTConfig `mapstructure:"mqtt"`
	HTTP HTTPConfig `mapstructure:"http"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type MQTTConfig struct {
	Broker      string `mapstructure:"broker"`
	ClientID    string `mapstructure:"client_id"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	TopicPrefix string `mapstructure:"topic_prefix"`
	QoS         int    `mapstructure:"qos"`
	Retain      bool   `mapstructure:"retain"`
}

type HTTPConfig struct {
	Listen string `mapstructure:"listen"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("https", false)
	v.SetDefault("uuid", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic_prefix", "daikin")
	v.SetDefault("mqtt.qos", 1)
	v.SetDefault("mqtt.retain", true)
	v.SetDefault("http.listen", ":8080")
}

// Load reads configuration into v and decodes it. Flags should already be
// bound to v. path may be empty, in which case daikinctl.yaml is looked up in
// the working directory and in $HOME/.config/daikinctl; a missing file is fine.
func Load(v *viper.Viper, path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("daikinctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/daikinctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return daikinhttp.NewConfigurationError("host is not set (use --host, DAIKIN_HOST or the config file)")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return daikinhttp.NewConfigurationError(fmt.Sprintf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS))
	}
	return nil
}

// ClientOptions translates the settings into daikinhttp client options.
func (c *Config) ClientOptions() []daikinhttp.Option {
	var opts []daikinhttp.Option
	if c.Timeout > 0 {
		opts = append(opts, daikinhttp.WithTimeout(c.Timeout))
	}
	if c.HTTPS {
		// BRP072C adapters use a self-signed certificate
		opts = append(opts, daikinhttp.WithTLS(&tls.Config{InsecureSkipVerify: true})) //nolint:gosec
	}
	if c.HTTPS || c.UUID != "" {
		opts = append(opts, daikinhttp.WithTerminalUUID(c.UUID))
	}
	return opts
}
