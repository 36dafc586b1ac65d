package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestVersionCmdPrintsVersionAndCommit(t *testing.T) {
	Version = "1.2.3"
	GitCommit = "abc123"

	root := &cobra.Command{Use: "metastatic"}
	root.AddCommand(versionCmd)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	assert.NoError(t, root.Execute())

	assert.Equal(t, "Version: 1.2.3\nGit Commit: abc123\n", buf.String())
}

func TestVersionCmdRegistration(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"version"})
	assert.NoError(t, err)
	assert.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Name())
}
