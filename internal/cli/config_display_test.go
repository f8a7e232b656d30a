package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agbru/perfphylo/internal/config"
)

func TestDisplayExecutionConfig(t *testing.T) {
	cfg := config.AppConfig{
		Input:    "birds.txt",
		Timeout:  10 * time.Second,
		Mode:     "exhaustive",
		Parallel: 3,
		Format:   "json",
	}

	var buf bytes.Buffer
	DisplayExecutionConfig(cfg, &buf)
	assert.Contains(t, buf.String(), "Reading birds.txt with a timeout of 10s.")
	assert.Contains(t, buf.String(), "mode=exhaustive, parallel=3, internal labels=false")
	assert.NotContains(t, buf.String(), "Output:")

	buf.Reset()
	cfg.OutputDir = "out"
	DisplayExecutionConfig(cfg, &buf)
	assert.Contains(t, buf.String(), "Output: json files in out.")
}
