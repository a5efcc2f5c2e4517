package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dragalert/go-layout"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory when no path is given
const FileName = "layoutc.yaml"

var validate = validator.New()

// Config holds options of the layout builder and renderers
type Config struct {
	// Format of the rendered output: jsx, html, tree, json or text
	Format string `yaml:"format" validate:"oneof=jsx html tree json text"`

	// Indent is the initial indentation level of jsx and tree output
	Indent int `yaml:"indent" validate:"gte=0,lte=16"`

	// FallbackTag replaces tags missing in the tag map
	FallbackTag string `yaml:"fallback_tag" validate:"required"`

	// Tags are additional tag mappings, element tag to rendered tag
	Tags map[string]string `yaml:"tags,omitempty" validate:"dive,keys,required,endkeys,required"`

	// Precedence of extra attributes over computed ones: extra or reserved
	Precedence string `yaml:"precedence" validate:"oneof=extra reserved"`

	JSX  JSX  `yaml:"jsx"`
	HTML HTML `yaml:"html"`
}

type JSX struct {
	ReactProps      bool `yaml:"react_props"`
	CamelCaseStyles bool `yaml:"camel_case_styles"`
}

type HTML struct {
	Minify bool `yaml:"minify"`
}

// Default returns config with default values
func Default() *Config {
	return &Config{
		Format:      "jsx",
		FallbackTag: "div",
		Precedence:  "extra",
	}
}

// Load reads config from the file. A missing file gives default config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse reads YAML config, fields missing in data keep their default values.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// TagMap returns the default tag map extended with configured tags.
func (c *Config) TagMap() layout.TagMap {
	return layout.DefaultTagMap().With(c.Tags).WithFallback(c.FallbackTag)
}

func (c *Config) BuilderOptions() []layout.Option {
	if c.Precedence == "reserved" {
		return []layout.Option{layout.WithPrecedence(layout.ReservedWins)}
	}

	return []layout.Option{layout.WithPrecedence(layout.ExtraWins)}
}

func (c *Config) JSXOptions() []layout.JSXOption {
	return []layout.JSXOption{
		layout.WithTagMap(c.TagMap()),
		layout.WithReactProps(c.JSX.ReactProps),
		layout.WithCamelCaseStyles(c.JSX.CamelCaseStyles),
	}
}

func (c *Config) HTMLOptions() []layout.HTMLOption {
	return []layout.HTMLOption{
		layout.WithHTMLTagMap(c.TagMap()),
		layout.WithMinify(c.HTML.Minify),
	}
}
