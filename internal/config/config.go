package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
)

// DefaultCommitMessage joins every argument into the commit message
const DefaultCommitMessage = "$1+"

// legacyCommitMessage is the placeholder older .glitterrc files used for the default template
const legacyCommitMessage = "$RAW_COMMIT_MSG"

// FileNames lists the configuration files looked up in the working directory, in order
var FileNames = []string{".glitterrc", ".glitterrc.json", ".glitterrc.toml"}

// ArgumentRule customizes a single positional argument of the commit message
type ArgumentRule struct {
	Argument  int      `json:"argument" toml:"argument"`
	Case      string   `json:"case,omitempty" toml:"case,omitempty"`
	TypeEnums []string `json:"type_enums,omitempty" toml:"type_enums,omitempty"`
}

// CustomTask is a named list of command lines
type CustomTask struct {
	Name    string   `json:"name" toml:"name"`
	Execute []string `json:"execute" toml:"execute"`
}

// Config represents the .glitterrc configuration
type Config struct {
	CommitMessage          string         `json:"commit_message" toml:"commit_message"`
	CommitMessageArguments []ArgumentRule `json:"commit_message_arguments,omitempty" toml:"commit_message_arguments,omitempty"`
	Fetch                  *bool          `json:"fetch,omitempty" toml:"fetch,omitempty"`
	CustomTasks            []CustomTask   `json:"custom_tasks,omitempty" toml:"custom_tasks,omitempty"`
	Hooks                  []string       `json:"hooks,omitempty" toml:"hooks,omitempty"`
	Verbose                *bool          `json:"verbose,omitempty" toml:"verbose,omitempty"`

	// IsDefault is set when no configuration file was found
	IsDefault bool `json:"-" toml:"-"`
	// Path is the file the configuration was read from
	Path string `json:"-" toml:"-"`
}

// Default returns the configuration used when no .glitterrc exists
func Default() *Config {
	return &Config{
		CommitMessage: DefaultCommitMessage,
		IsDefault:     true,
	}
}

// ShouldFetch reports whether `git fetch` runs before committing
func (c *Config) ShouldFetch() bool {
	return c.Fetch != nil && *c.Fetch
}

// VerboseDefault returns the configured verbose default, false if unset
func (c *Config) VerboseDefault() bool {
	return c.Verbose != nil && *c.Verbose
}

// Find returns the first configuration file present in dir, or "" if there is none
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load reads the configuration for dir. An explicit path must exist; otherwise the
// well-known file names are searched and Default is returned when none is found.
func Load(dir, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = Find(dir)
		if path == "" {
			return Default(), nil
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	return LoadFile(path)
}

// LoadFile reads and validates a single configuration file.
// Files ending in .toml are parsed as TOML, everything else as JSON with comments.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".toml"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Path = path

	return cfg, nil
}

// Parse decodes configuration data and applies defaults
func Parse(data []byte, isTOML bool) (*Config, error) {
	var cfg Config
	if isTOML {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.CommitMessage == "" || c.CommitMessage == legacyCommitMessage {
		c.CommitMessage = DefaultCommitMessage
	}
}

// Validate checks the argument rules and custom tasks
func (c *Config) Validate() error {
	var errs []error
	for _, rule := range c.CommitMessageArguments {
		if rule.Argument < 1 || rule.Argument > 9 {
			errs = append(errs, fmt.Errorf("commit_message_arguments: argument %d is out of range (1-9)", rule.Argument))
		}
	}
	for i, task := range c.CustomTasks {
		if strings.TrimSpace(task.Name) == "" {
			errs = append(errs, fmt.Errorf("custom_tasks[%d]: name must not be empty", i))
		}
	}
	return errors.Join(errs...)
}

// RuleFor returns the first rule configured for the 1-based argument index
func (c *Config) RuleFor(index int) (ArgumentRule, bool) {
	return FindRule(c.CommitMessageArguments, index)
}

// FindRule returns the first of rules that applies to the 1-based argument index
func FindRule(rules []ArgumentRule, index int) (ArgumentRule, bool) {
	for _, rule := range rules {
		if rule.Argument == index {
			return rule, true
		}
	}
	return ArgumentRule{}, false
}
