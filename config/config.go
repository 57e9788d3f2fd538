package config

import (
	"bytes"
	"errors"
	"os"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/vnretail/docscan/pkg/pipeline"
	"github.com/vnretail/docscan/pkg/recognizer"
)

type Config struct {
	recognizers map[string]recognizer.Provider

	languages []string
	timeout   time.Duration
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		languages: file.Pipeline.Languages,
	}

	if file.Pipeline.Timeout != "" {
		timeout, err := time.ParseDuration(file.Pipeline.Timeout)

		if err != nil {
			return nil, errors.New("invalid timeout: " + file.Pipeline.Timeout)
		}

		c.timeout = timeout
	}

	if err := c.registerRecognizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

// Pipeline assembles an extraction pipeline over the default recognizer
// chain.
func (cfg *Config) Pipeline() (*pipeline.Pipeline, error) {
	p, err := cfg.Recognizer("")

	if err != nil {
		return nil, err
	}

	var options []pipeline.Option

	if len(cfg.languages) > 0 {
		options = append(options, pipeline.WithLanguages(cfg.languages...))
	}

	return pipeline.New(p, options...)
}

type configFile struct {
	Recognizers yaml.Node `yaml:"recognizers"`

	Pipeline pipelineConfig `yaml:"pipeline"`
}

type pipelineConfig struct {
	Languages []string `yaml:"languages"`
	Timeout   string   `yaml:"timeout"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
