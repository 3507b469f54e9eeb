package config_test

import (
	"testing"

	"govdoc-manager/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "ims", cfg.Database.Name)
	assert.Equal(t, "archives", cfg.Storage.Bucket)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "ims", cfg.Identity.Group)
}

func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", ":memory:")
	t.Setenv("IDENTITY_GROUP", "slm")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Name)
	assert.Equal(t, "slm", cfg.Identity.Group)
}
