package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	RootCmd.AddCommand(Version, Migrate, Deploy)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := RootCmd
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, BuildVersion+"\n", out)
}

func TestMigrate_RequiresPostgres(t *testing.T) {
	t.Setenv("CTE_STORAGE_DRIVER", "memory")
	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "storage.driver=postgres")
}

func TestDeploy_RequiresPostgres(t *testing.T) {
	t.Setenv("CTE_STORAGE_DRIVER", "memory")
	_, err := run(t, "deploy", "--supply", "10")
	assert.ErrorContains(t, err, "storage.driver=postgres")
}

func TestRoot_RejectsBadConfig(t *testing.T) {
	t.Setenv("CTE_TAX_COMPACTION", "rotate")
	_, err := run(t, "version")
	assert.ErrorContains(t, err, "tax.compaction")
}
