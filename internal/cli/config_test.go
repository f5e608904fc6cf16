package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrjana/go-api-documenter/pkg/apidoc"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apidoc.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("parses all keys", func(t *testing.T) {
		path := writeConfigFile(t, `
title = "libwidget"
description = "Widgets for everyone."
table_of_contents = true
latex_pagebreak = false
minimal_classes = ["widgets.Widget"]
objects_to_ignore = ["widgets.Registry"]
packages = ["./pkg/..."]
`)
		cfg, err := loadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "libwidget", cfg.Title)
		assert.Equal(t, "Widgets for everyone.", cfg.Description)
		require.NotNil(t, cfg.TableOfContents)
		assert.True(t, *cfg.TableOfContents)
		require.NotNil(t, cfg.LatexPagebreak)
		assert.False(t, *cfg.LatexPagebreak)
		assert.Equal(t, []string{"widgets.Widget"}, cfg.MinimalClasses)
		assert.Equal(t, []string{"widgets.Registry"}, cfg.ObjectsToIgnore)
		assert.Equal(t, []string{"./pkg/..."}, cfg.Packages)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeConfigFile(t, `titel = "typo"`)
		_, err := loadFileConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}

func TestFileConfigApply(t *testing.T) {
	newFlags := func(t *testing.T, args ...string) *pflag.FlagSet {
		t.Helper()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("title", "API Reference", "")
		flags.String("description", "", "")
		flags.Bool("toc", true, "")
		flags.Bool("pagebreak", false, "")
		flags.StringSlice("minimal", nil, "")
		flags.StringSlice("ignore", nil, "")
		require.NoError(t, flags.Parse(args))
		return flags
	}

	pagebreak := true
	fileCfg := fileConfig{
		Title:          "from file",
		Description:    "file description",
		LatexPagebreak: &pagebreak,
		MinimalClasses: []string{"a.B"},
	}

	t.Run("file values fill unset flags", func(t *testing.T) {
		cfg := fileCfg.apply(apidoc.Config{Title: "API Reference", TableOfContents: true}, newFlags(t))
		assert.Equal(t, "from file", cfg.Title)
		assert.Equal(t, "file description", cfg.Description)
		assert.True(t, cfg.LatexPagebreak)
		assert.Equal(t, []string{"a.B"}, cfg.MinimalClasses)
		assert.True(t, cfg.TableOfContents)
	})

	t.Run("explicit flags win over the file", func(t *testing.T) {
		flags := newFlags(t, "--title", "from flag", "--pagebreak=false")
		cfg := fileCfg.apply(apidoc.Config{Title: "from flag"}, flags)
		assert.Equal(t, "from flag", cfg.Title)
		assert.False(t, cfg.LatexPagebreak)
		assert.Equal(t, "file description", cfg.Description)
	})
}
