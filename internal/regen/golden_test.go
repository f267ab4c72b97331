package regen

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShafSpecs/testregen/internal/fixtures"
)

var updateGolden = flag.Bool("update-golden", false, "update golden test files")

func TestRewrite_GoldenDocument_MatchesExpectedOutput(t *testing.T) {
	loader := fixtures.NewDir(filepath.Join("testdata", "corpus"))

	raw, err := os.ReadFile(filepath.Join("testdata", "document.rs"))
	require.NoError(t, err)

	out, sum, err := Rewrite(string(raw), loader)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Regions)
	require.Equal(t, 4, sum.Fixtures)

	goldenPath := filepath.Join("testdata", "document.golden.rs")
	if *updateGolden {
		require.NoError(t, os.WriteFile(goldenPath, []byte(out), 0o600))
	}

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	require.Equal(t, string(golden), out)

	again, _, err := Rewrite(out, loader)
	require.NoError(t, err)
	require.Equal(t, out, again)
}
