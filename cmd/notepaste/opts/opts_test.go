package opts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/vault"
)

func TestNotePath(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755), "creating dir should succeed")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "a.md"), []byte("a"), 0o644), "writing note should succeed")

	v, err := vault.Open(ctx, root)
	require.NoError(t, err, "opening vault should succeed")
	o := &RootOpts{Vault: v}

	tests := []struct {
		name    string
		arg     string
		want    string
		wantErr string
	}{
		{name: "absolute", arg: filepath.Join(root, "notes", "a.md"), want: "notes/a.md"},
		{name: "missing", arg: filepath.Join(root, "notes", "b.md"), wantErr: "not found"},
		{name: "outside", arg: filepath.Join(filepath.Dir(root), "x.md"), wantErr: "outside the vault"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.NotePath(tt.arg)
			if tt.wantErr != "" {
				require.Error(t, err, "NotePath should fail")
				assert.Contains(t, err.Error(), tt.wantErr, "error should match")
				return
			}
			require.NoError(t, err, "NotePath should succeed")
			assert.Equal(t, tt.want, got, "vault path should match")
		})
	}
}
