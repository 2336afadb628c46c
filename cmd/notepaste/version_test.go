package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{
			name: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "notepaste version info", "header should be printed")
				assert.Contains(t, out, runtime.Version(), "go version should be printed")
			},
		},
		{
			name: "json",
			args: []string{"--json"},
			check: func(t *testing.T, out string) {
				var info VersionInfo
				require.NoError(t, json.Unmarshal([]byte(out), &info), "output should be json")
				assert.Equal(t, runtime.Version(), info.GoVersion, "go version should match")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newVersionCmd()
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute(), "version should run")
			tt.check(t, buf.String())
		})
	}
}
