package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vnretail/docscan/config"
)

func parse(t *testing.T, data string) (*config.Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return config.Parse(path)
}

func TestParse(t *testing.T) {
	cfg, err := parse(t, `
recognizers:
  cloud:
    type: vision
    token: test-key

  local:
    type: tesseract
    languages: [vie, eng]
    limit: 2

pipeline:
  languages: [vi, en]
  timeout: 15s
`)

	require.NoError(t, err)

	_, err = cfg.Recognizer("cloud")
	require.NoError(t, err)

	_, err = cfg.Recognizer("local")
	require.NoError(t, err)

	p, err := cfg.Pipeline()
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestParseSkipsVisionWithoutCredential(t *testing.T) {
	cfg, err := parse(t, `
recognizers:
  cloud:
    type: vision

  local:
    type: tesseract
`)

	require.NoError(t, err)

	_, err = cfg.Recognizer("cloud")
	require.Error(t, err)

	_, err = cfg.Recognizer("local")
	require.NoError(t, err)
}

func TestParseExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCSCAN_TEST_TOKEN", "secret")

	cfg, err := parse(t, `
recognizers:
  cloud:
    type: vision
    token: ${DOCSCAN_TEST_TOKEN}
`)

	require.NoError(t, err)

	_, err = cfg.Recognizer("cloud")
	require.NoError(t, err)
}

func TestParseRejectsUnknownType(t *testing.T) {
	_, err := parse(t, `
recognizers:
  broken:
    type: telepathy
`)

	require.Error(t, err)
}

func TestParseRequiresRecognizers(t *testing.T) {
	_, err := parse(t, `
pipeline:
  timeout: 5s
`)

	require.Error(t, err)
}

func TestParseRejectsInvalidTimeout(t *testing.T) {
	_, err := parse(t, `
recognizers:
  local:
    type: tesseract

pipeline:
  timeout: soon
`)

	require.Error(t, err)
}
