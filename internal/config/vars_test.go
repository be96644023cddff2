// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempVars(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".dev.vars")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── LoadVarsFile ──────────────────────────────────────────────────────────────

func TestLoadVarsFile_ParsesPairs(t *testing.T) {
	path := writeTempVars(t, strings.Join([]string{
		"LARK_APP_ID=cli_123",
		"  LARK_APP_SECRET = s3cr3t  ",
		"BITABLE_APP_TOKEN=bas=cn==",
	}, "\n"))

	vars, err := LoadVarsFile(path)

	require.NoError(t, err)
	assert.Equal(t, Vars{
		"LARK_APP_ID":       "cli_123",
		"LARK_APP_SECRET":   "s3cr3t",
		"BITABLE_APP_TOKEN": "bas=cn==",
	}, vars)
}

func TestLoadVarsFile_SkipsCommentsBlankAndMalformed(t *testing.T) {
	path := writeTempVars(t, strings.Join([]string{
		"# LARK_APP_ID=commented",
		"   # INDENTED=comment",
		"",
		"   ",
		"NO_EQUALS_SIGN",
		"VALID=yes",
	}, "\n"))

	vars, err := LoadVarsFile(path)

	require.NoError(t, err)
	assert.Equal(t, Vars{"VALID": "yes"}, vars)
}

func TestLoadVarsFile_EmptyValueKept(t *testing.T) {
	path := writeTempVars(t, "EMPTY=\n")

	vars, err := LoadVarsFile(path)

	require.NoError(t, err)
	v, ok := vars["EMPTY"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestLoadVarsFile_LongLineAndNoTrailingNewline(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	path := writeTempVars(t, "LONG="+long+"\nLAST=tail")

	vars, err := LoadVarsFile(path)

	require.NoError(t, err)
	assert.Len(t, vars["LONG"], len(long))
	assert.Equal(t, "tail", vars["LAST"])
}

func TestLoadVarsFile_MissingFileIsEmpty(t *testing.T) {
	vars, err := LoadVarsFile(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, err)
	assert.Empty(t, vars)
	assert.NotNil(t, vars)
}

func TestLoadVarsFile_DirectoryIsError(t *testing.T) {
	_, err := LoadVarsFile(t.TempDir())
	assert.Error(t, err)
}

func TestSplitVar(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{name: "plain", line: "A=1", wantKey: "A", wantValue: "1", wantOK: true},
		{name: "first equals splits", line: "A=b=c", wantKey: "A", wantValue: "b=c", wantOK: true},
		{name: "comment", line: "#A=1", wantOK: false},
		{name: "no equals", line: "A", wantOK: false},
		{name: "blank", line: "", wantOK: false},
		{name: "spaces trimmed", line: "  A  =  1  ", wantKey: "A", wantValue: "1", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitVar(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

// ── Merge ─────────────────────────────────────────────────────────────────────

func TestMerge_LaterLayerWins(t *testing.T) {
	file := Vars{"LARK_APP_ID": "from-file", "ONLY_FILE": "f"}
	environ := Vars{"LARK_APP_ID": "from-env", "ONLY_ENV": "e"}

	merged, err := Merge(file, environ)

	require.NoError(t, err)
	assert.Equal(t, Vars{
		"LARK_APP_ID": "from-env",
		"ONLY_FILE":   "f",
		"ONLY_ENV":    "e",
	}, merged)
}

func TestMerge_EmptyLaterValueStillOverrides(t *testing.T) {
	merged, err := Merge(Vars{"A": "file"}, Vars{"A": ""})

	require.NoError(t, err)
	assert.Equal(t, "", merged["A"])
}

func TestMerge_DoesNotMutateLayers(t *testing.T) {
	file := Vars{"A": "file"}

	_, err := Merge(file, Vars{"A": "env"})

	require.NoError(t, err)
	assert.Equal(t, "file", file["A"])
}

func TestMerge_NoLayers(t *testing.T) {
	merged, err := Merge()

	require.NoError(t, err)
	assert.Empty(t, merged)
}

func TestVarsFromEnviron(t *testing.T) {
	vars := varsFromEnviron([]string{"A=1", "B=x=y"})
	assert.Equal(t, Vars{"A": "1", "B": "x=y"}, vars)
}
