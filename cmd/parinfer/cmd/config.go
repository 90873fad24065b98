package cmd

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/parinfer-go/parinfer/parinfer"
)

// DialectConfig carries the project-wide defaults a .parinfer.yaml may set:
// dialect toggles and the comment character, applied before any per-call
// flag overrides.
type DialectConfig struct {
	CommentChar        string `yaml:"commentChar"`
	LispVlineSymbols   bool   `yaml:"lispVlineSymbols"`
	LispBlockComments  bool   `yaml:"lispBlockComments"`
	GuileBlockComments bool   `yaml:"guileBlockComments"`
	SchemeSexpComments bool   `yaml:"schemeSexpComments"`
	JanetLongStrings   bool   `yaml:"janetLongStrings"`
}

// LoadConfig reads configFile if present; a missing file is not an error,
// since most invocations (editor plugins, one-off formatting) have no
// project-level dialect to declare.
func LoadConfig() (DialectConfig, error) {
	var cfg DialectConfig

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c DialectConfig) applyTo(opts parinfer.Options) parinfer.Options {
	if opts.CommentChar == "" {
		opts.CommentChar = c.CommentChar
	}
	opts.LispVlineSymbols = opts.LispVlineSymbols || c.LispVlineSymbols
	opts.LispBlockComments = opts.LispBlockComments || c.LispBlockComments
	opts.GuileBlockComments = opts.GuileBlockComments || c.GuileBlockComments
	opts.SchemeSexpComments = opts.SchemeSexpComments || c.SchemeSexpComments
	opts.JanetLongStrings = opts.JanetLongStrings || c.JanetLongStrings
	return opts
}
