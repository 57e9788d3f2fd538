package config

import (
	"errors"
	"strings"

	"github.com/vnretail/docscan/pkg/limiter"
	"github.com/vnretail/docscan/pkg/otel"
	"github.com/vnretail/docscan/pkg/recognizer"
	"github.com/vnretail/docscan/pkg/recognizer/fallback"
	"github.com/vnretail/docscan/pkg/recognizer/tesseract"
	"github.com/vnretail/docscan/pkg/recognizer/vision"
)

func (cfg *Config) RegisterRecognizer(id string, p recognizer.Provider) {
	if cfg.recognizers == nil {
		cfg.recognizers = make(map[string]recognizer.Provider)
	}

	if _, ok := cfg.recognizers[""]; !ok {
		cfg.recognizers[""] = p
	}

	cfg.recognizers[id] = p
}

func (cfg *Config) Recognizer(id string) (recognizer.Provider, error) {
	if cfg.recognizers != nil {
		if p, ok := cfg.recognizers[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("recognizer not found: " + id)
}

type recognizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Languages []string `yaml:"languages"`

	Limit *int `yaml:"limit"`
}

// registerRecognizers builds the configured providers in file order and
// registers the fallback chain over them as the default.
//
// A vision entry without a credential is skipped entirely so no doomed
// network attempt is ever made; the chain then starts at the local engine.
func (cfg *Config) registerRecognizers(f *configFile) error {
	var configs map[string]recognizerConfig

	if len(f.Recognizers.Content) == 0 {
		return errors.New("no recognizers configured")
	}

	if err := f.Recognizers.Decode(&configs); err != nil {
		return err
	}

	var recognizers []recognizer.Provider

	for _, node := range f.Recognizers.Content {
		id := node.Value

		config, ok := configs[id]

		if !ok {
			continue
		}

		if strings.EqualFold(config.Type, "vision") && config.Token == "" {
			continue
		}

		p, err := createRecognizer(config)

		if err != nil {
			return err
		}

		if _, ok := p.(limiter.Recognizer); !ok {
			p = limiter.NewRecognizer(createLimiter(config.Limit), p)
		}

		if _, ok := p.(otel.Recognizer); !ok {
			p = otel.NewRecognizer(id, p)
		}

		recognizers = append(recognizers, p)

		cfg.RegisterRecognizer(id, p)
	}

	if len(recognizers) == 0 {
		return errors.New("no recognizers available")
	}

	// The chain timeout bounds each provider attempt, so a hanging cloud
	// call still leaves the local engine a chance.
	cfg.recognizers[""] = fallback.New(recognizers...).WithTimeout(cfg.timeout)

	return nil
}

func createRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "vision":
		return visionRecognizer(cfg)

	case "tesseract":
		return tesseractRecognizer(cfg)

	default:
		return nil, errors.New("invalid recognizer type: " + cfg.Type)
	}
}

func visionRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []vision.Option

	if cfg.URL != "" {
		options = append(options, vision.WithURL(cfg.URL))
	}

	return vision.New(cfg.Token, options...)
}

func tesseractRecognizer(cfg recognizerConfig) (recognizer.Provider, error) {
	var options []tesseract.Option

	if len(cfg.Languages) > 0 {
		options = append(options, tesseract.WithLanguages(cfg.Languages...))
	}

	return tesseract.New(options...)
}
