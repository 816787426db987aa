package filterfx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/donoghuc/logstash-filter-elastic-integration/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestModuleRegistersFilterOnStart(t *testing.T) {
	path := writeConfig(t, `
hosts = ["127.0.0.1"]
ssl = false
ssl_verification_mode = "none"
`)

	app := fxtest.New(t,
		Module(WithConfigEnv("FILTERFX_TEST_CONFIG"), WithDefaultConfig(path)),
		fx.Replace(zap.NewNop()),
	)
	app.RequireStart().RequireStop()
}

func TestModuleAbortsStartupOnInvalidConfig(t *testing.T) {
	// No connection target: registration must fail and abort startup.
	path := writeConfig(t, `ssl = false
ssl_verification_mode = "none"
`)

	app := fx.New(
		Module(WithConfigEnv("FILTERFX_TEST_CONFIG"), WithDefaultConfig(path)),
		fx.Replace(zap.NewNop()),
		fx.NopLogger,
	)
	require.NoError(t, app.Err())
	err := app.Start(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), config.ErrMissingRequired.Error())
}

func TestModuleFailsWhenConfigFileMissing(t *testing.T) {
	app := fx.New(
		Module(WithConfigEnv("FILTERFX_TEST_CONFIG"), WithDefaultConfig(filepath.Join(t.TempDir(), "missing.toml"))),
		fx.Replace(zap.NewNop()),
		fx.NopLogger,
	)
	require.Error(t, app.Err())
}

func TestModuleConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, `
cloud_id = "my-cloud:abcdef"
ssl = false
ssl_verification_mode = "none"
`)
	t.Setenv("FILTERFX_TEST_CONFIG_ENV", path)

	app := fxtest.New(t,
		Module(WithConfigEnv("FILTERFX_TEST_CONFIG_ENV"), WithDefaultConfig("does-not-exist.toml")),
		fx.Replace(zap.NewNop()),
	)
	app.RequireStart().RequireStop()
}
