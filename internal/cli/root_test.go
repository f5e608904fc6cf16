package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	t.Run("writes to stdout by default", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		require.NoError(t, writeOutput("", cmd, "# Title\n"))
		assert.Equal(t, "# Title\n", buf.String())
	})

	t.Run("dash means stdout", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		require.NoError(t, writeOutput("-", cmd, "doc"))
		assert.Equal(t, "doc", buf.String())
	})

	t.Run("creates parent directories for file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docs", "api.md")
		require.NoError(t, writeOutput(path, &cobra.Command{}, "# Title\n"))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(data))
	})
}
