package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"mediaorg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp source and destination
// directories per test. The source directory is created; the destination is
// left for the organizer to create.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Source = filepath.Join(base, "source")
	cfgVal.Paths.Destination = filepath.Join(base, "library")
	cfgVal.Organize.AssumeYes = true
	cfgVal.Organize.Timezone = "UTC"
	if err := os.MkdirAll(cfgVal.Paths.Source, 0o755); err != nil {
		t.Fatalf("mkdir source: %v", err)
	}

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDryRun toggles dry-run mode on the test config.
func WithDryRun(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.DryRun = enabled
	}
}

// WithDestinationInsideSource nests the destination under the source root.
func WithDestinationInsideSource() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Destination = filepath.Join(b.cfg.Paths.Source, "Organized")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Source)
}
