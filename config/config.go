package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"mprxo/botvds/domain"

	"gopkg.in/yaml.v3"
)

const (
	defaultFilename = "botvds.yml"
)

var loadedConfig *domain.Config

func Check() error {

	if loadedConfig == nil {
		config, err := parseConfigFile(defaultFilename)
		if err != nil {
			return err
		}
		loadedConfig = &config
	}

	return nil
}

func Get() domain.Config {
	return *loadedConfig
}

// Default returns the built-in host configuration, used when no 'botvds.yml'
// is present in the working directory.
func Default() domain.Config {
	return domain.Config{
		ServiceName: "telegram-bot",
		Description: "Telegram bot",
		ServiceUser: "botuser",
		InstallDir:  "/opt/telegram-bot",
		SourceDir:   ".",
		Entrypoint:  "main.py",
		Packages:    []string{"python3", "python3-venv", "python3-pip", "git", "ufw", "fail2ban"},
		SSHProfile:  "OpenSSH",
		Checklist: []string{
			"Copy .env.example to /opt/telegram-bot/.env and set BOT_TOKEN",
			"Run 'telegram-bot start' to launch the bot",
			"Run 'telegram-bot logs' to follow the bot output",
		},
	}
}

type parserConfig struct {
	Service     string   `yaml:"service"`
	Description string   `yaml:"description"`
	User        string   `yaml:"user"`
	InstallDir  string   `yaml:"install_dir"`
	Entrypoint  string   `yaml:"entrypoint"`
	Packages    []string `yaml:"packages"`
	SSHProfile  string   `yaml:"ssh_profile"`
	Checklist   []string `yaml:"checklist"`
}

func (parsed parserConfig) convertToConfig(config *domain.Config) {
	if parsed.Service != "" {
		config.ServiceName = parsed.Service
	}
	if parsed.Description != "" {
		config.Description = parsed.Description
	}
	if parsed.User != "" {
		config.ServiceUser = parsed.User
	}
	if parsed.InstallDir != "" {
		config.InstallDir = parsed.InstallDir
	}
	if parsed.Entrypoint != "" {
		config.Entrypoint = parsed.Entrypoint
	}
	if len(parsed.Packages) > 0 {
		config.Packages = parsed.Packages
	}
	if parsed.SSHProfile != "" {
		config.SSHProfile = parsed.SSHProfile
	}
	if len(parsed.Checklist) > 0 {
		config.Checklist = parsed.Checklist
	}
}

func parseConfigFile(filename string) (domain.Config, error) {

	config := Default()

	configFile, err := ioutil.ReadFile(filename)
	if err != nil {
		// no config file is the normal case: run with the defaults
		if os.IsNotExist(err) {
			return config, nil
		}
		fmt.Printf("Unable to read the config file '%s'\n", filename)
		return config, err
	}

	var parsed parserConfig
	err = yaml.Unmarshal(configFile, &parsed)
	if err != nil {
		fmt.Printf("Unable to parse the config file. Check '%s' syntax.\n", filename)
		fmt.Println(err)
		return config, err
	}

	parsed.convertToConfig(&config)

	return config, nil
}
