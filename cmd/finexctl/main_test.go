package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/finex")
	t.Setenv("REDIS_URL", "")

	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := loadConfig()
	assert.Equal(t, "postgres://env/finex", cfg.Database.URL)
	assert.Empty(t, cfg.Redis.URL)

	viper.Set("database_url", "postgres://flag/finex")
	viper.Set("redis_url", "redis://localhost:6379/1")

	cfg = loadConfig()
	assert.Equal(t, "postgres://flag/finex", cfg.Database.URL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
}

func TestRootCommand_Tree(t *testing.T) {
	tests := []struct {
		path []string
		use  string
	}{
		{[]string{"migrate"}, "migrate"},
		{[]string{"operators", "list"}, "list"},
		{[]string{"operators", "add"}, "add <username>"},
		{[]string{"operators", "delete"}, "delete <id>"},
		{[]string{"export"}, "export"},
		{[]string{"codes", "next"}, "next"},
	}

	for _, tt := range tests {
		cmd, _, err := rootCmd.Find(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.use, cmd.Use)
	}
}

func TestExportCommand_RequiresPeriod(t *testing.T) {
	cmd := exportCmd()

	for _, name := range []string{"start", "end"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag)
		assert.Equal(t, []string{"true"}, flag.Annotations["cobra_annotation_bash_completion_one_required_flag"])
	}
}

func TestAddOperatorCommand_DefaultColor(t *testing.T) {
	cmd := addOperatorCmd()

	assert.Equal(t, "blue", cmd.Flags().Lookup("color").DefValue)
	assert.Equal(t, "", cmd.Flags().Lookup("name").DefValue)
}

func TestInitConfig_RejectsUnknownLogLevel(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("log_level", "chatty")
	assert.Error(t, initConfig(nil, nil))

	viper.Set("log_level", "debug")
	assert.NoError(t, initConfig(nil, nil))
}
