package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// AttachCommand is the hypervisor command prefix rendered into generated
	// attachment commands.
	AttachCommand string `yaml:"attach_command,omitempty"`
	// Controller is the VM storage controller keyword slot indexes belong to.
	Controller string `yaml:"controller,omitempty"`
	// AliasDirs are the directories scanned for persistent identifier links.
	AliasDirs []string `yaml:"alias_dirs,omitempty"`
	// PreferredIDs are alias name markers tried in order when a device has
	// several identifier links.
	PreferredIDs []string `yaml:"preferred_ids,omitempty"`
}

// defaultConfig targets a stock Proxmox host.
var defaultConfig = Config{
	AttachCommand: "qm set",
	Controller:    "scsi",
	AliasDirs:     []string{"/dev/disk/by-id"},
	PreferredIDs:  []string{"wwn-"},
}

func Load(path string) (*Config, error) {
	if path == "" {
		// Try default locations
		candidates := []string{
			"/etc/diskpassthru/config.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/diskpassthru/config.yaml"),
			"config.yaml",
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	var cfg Config
	if path == "" {
		cfg = defaultConfig
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			cfg = defaultConfig
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	// Apply defaults for missing fields
	if cfg.AttachCommand == "" {
		cfg.AttachCommand = defaultConfig.AttachCommand
	}
	if cfg.Controller == "" {
		cfg.Controller = defaultConfig.Controller
	}
	if len(cfg.AliasDirs) == 0 {
		cfg.AliasDirs = defaultConfig.AliasDirs
	}
	if len(cfg.PreferredIDs) == 0 {
		cfg.PreferredIDs = defaultConfig.PreferredIDs
	}

	return &cfg, nil
}
