// Package config loads viewer settings from tube.json, then lets a .env file
// and TUBE_* environment variables override them.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// FileName is the settings file looked up in the config directory.
const FileName = "tube.json"

// Config holds every setting of the viewer.
type Config struct {
	DefaultWidth    int    `json:"defaultWidth"`  // used when the terminal reports no size
	DefaultHeight   int    `json:"defaultHeight"` // used when the terminal reports no size
	SSHEnabled      bool   `json:"sshEnabled"`
	SSHHost         string `json:"sshHost"`
	SSHPort         int    `json:"sshPort"`
	HostKeyPath     string `json:"hostKeyPath"`     // relative paths are resolved against the config directory
	LegacySSHAlgos  bool   `json:"legacySSHAlgos"`  // offer old ciphers and KEX for retro clients
	OutputMode      string `json:"outputMode"`      // auto, utf8 or cp437
	NoColor         bool   `json:"noColor"`         // strip all styling from frames
	WatchDataFile   bool   `json:"watchDataFile"`   // reload rows when the data file changes
	RefreshSchedule string `json:"refreshSchedule"` // cron spec with seconds; empty disables
	ScrollOverwrite bool   `json:"scrollOverwrite"` // keep the text viewer open after the last page
	LogFile         string `json:"logFile"`
	Debug           bool   `json:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultWidth:    80,
		DefaultHeight:   24,
		SSHEnabled:      false,
		SSHHost:         "0.0.0.0",
		SSHPort:         2222,
		HostKeyPath:     "ssh_host_ed25519_key",
		LegacySSHAlgos:  true,
		OutputMode:      "auto",
		WatchDataFile:   true,
		ScrollOverwrite: true,
		LogFile:         "tube.log",
	}
}

// LoadConfig reads tube.json from configPath over the defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(configPath string) (Config, error) {
	filePath := filepath.Join(configPath, FileName)
	log.Printf("INFO: Loading configuration from %s", filePath)

	cfg := Default()
	data, err := os.ReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		log.Printf("WARN: %s not found at %s. Using default settings.", FileName, filePath)
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config JSON from %s: %w", filePath, err)
		}
		log.Printf("INFO: Successfully loaded configuration from %s", filePath)
	}

	cfg.applyEnv(envLookup(filepath.Join(configPath, ".env")))
	cfg.Normalise(configPath)
	return cfg, nil
}

// envLookup reads the process environment first and falls back to the
// values of the .env file at path, if there is one.
func envLookup(path string) func(string) (string, bool) {
	dotenv, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: Ignoring %s: %v", path, err)
		}
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("TUBE_SSH_PORT"); ok {
		if port, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && port > 0 {
			cfg.SSHPort = port
		} else {
			log.Printf("WARN: Ignoring invalid TUBE_SSH_PORT %q", v)
		}
	}
	if v, ok := lookup("TUBE_CP437"); ok && truthy(v) {
		cfg.OutputMode = "cp437"
	}
	if v, ok := lookup("TUBE_NO_COLOR"); ok && truthy(v) {
		cfg.NoColor = true
	}
	if _, ok := lookup("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if v, ok := lookup("TUBE_REFRESH"); ok {
		cfg.RefreshSchedule = strings.TrimSpace(v)
	}
	if v, ok := lookup("DEBUG"); ok && truthy(v) {
		cfg.Debug = true
	}
}

func truthy(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// Normalise replaces unusable values with defaults and resolves the host
// key path against configPath.
func (cfg *Config) Normalise(configPath string) {
	def := Default()
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = def.DefaultWidth
	}
	if cfg.DefaultHeight <= 0 {
		cfg.DefaultHeight = def.DefaultHeight
	}
	if cfg.SSHPort <= 0 || cfg.SSHPort > 65535 {
		log.Printf("WARN: Invalid SSH port %d, using %d", cfg.SSHPort, def.SSHPort)
		cfg.SSHPort = def.SSHPort
	}
	if strings.TrimSpace(cfg.SSHHost) == "" {
		cfg.SSHHost = def.SSHHost
	}
	if strings.TrimSpace(cfg.HostKeyPath) == "" {
		cfg.HostKeyPath = def.HostKeyPath
	}
	if !filepath.IsAbs(cfg.HostKeyPath) {
		cfg.HostKeyPath = filepath.Join(configPath, cfg.HostKeyPath)
	}
	cfg.OutputMode = strings.ToLower(strings.TrimSpace(cfg.OutputMode))
	if cfg.OutputMode == "" {
		cfg.OutputMode = def.OutputMode
	}
}
