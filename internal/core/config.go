package core

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains all of the configuration options available to the l2crypt
// command line tools.
type Config struct {
	Crypt struct {
		// Blowfish key used for packet encryption, decryption and checksum
		// stamping. 1 to 56 bytes.
		Key string `mapstructure:"key"`
	} `mapstructure:"crypt"`

	Logging struct {
		// Full path to file to which logs will be written. Blank will write to stdout.
		LogFilePath string `mapstructure:"log_file_path"`
		// Minimum level of a log required to be written. Options: debug, info, warn, error
		LogLevel string `mapstructure:"log_level"`
		// Whether to annotate logs with the caller's file and line number.
		IncludeCaller bool `mapstructure:"include_caller"`
	} `mapstructure:"logging"`

	Sniffer struct {
		// Device on which the sniffer will listen for packets.
		Device string `mapstructure:"device"`
		// Port on which the login server being observed accepts connections.
		LoginPort int `mapstructure:"login_port"`
		// Optional BPF filter overriding the one built from login_port.
		BPFFilter string `mapstructure:"bpf_filter"`
		// Seconds of inactivity after which a tracked session is dropped.
		SessionTTLSeconds int `mapstructure:"session_ttl_seconds"`
	} `mapstructure:"sniffer"`
}

const envVarPrefix = "L2CRYPT"

// LoadConfig initializes Viper with the contents of the config file under configPath.
func LoadConfig(configPath string) *Config {
	viper.AddConfigPath(configPath)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("logging.log_level", "info")
	viper.SetDefault("sniffer.login_port", 2106)

	viper.SetEnvPrefix(envVarPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("error reading config file: %v\n", err)
		os.Exit(1)
	}

	// This allows us to set nested yaml config options through environment
	// variables. For example, crypt.key can be set using: <envVarPrefix>_CRYPT_KEY
	for _, k := range viper.AllKeys() {
		envVar := strings.ReplaceAll(strings.ToUpper(k), ".", "_")
		if err := viper.BindEnv(k, envVarPrefix+"_"+envVar); err != nil {
			fmt.Printf("error binding %s to %s\n", k, envVarPrefix+"_"+envVar)
			os.Exit(1)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		fmt.Printf("error unmarshaling config object: %v\n", err)
		os.Exit(1)
	}
	return config
}

const defaultSessionTTL = 5 * time.Minute

// SessionTTL returns the configured sniffer session lifetime, falling back
// to a sane default when unset.
func (c *Config) SessionTTL() time.Duration {
	if c.Sniffer.SessionTTLSeconds <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(c.Sniffer.SessionTTLSeconds) * time.Second
}

// SnifferFilter returns the BPF filter the sniffer should apply, either the
// configured override or one scoped to the login port.
func (c *Config) SnifferFilter() string {
	if c.Sniffer.BPFFilter != "" {
		return c.Sniffer.BPFFilter
	}
	return fmt.Sprintf("tcp and port %d", c.Sniffer.LoginPort)
}
