package selfkind_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/go-selfkind/pkg/selfkind"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		content     string
		wantPinned  []string
		wantInclude []string
		wantExclude []string
		wantErr     bool
	}{
		{
			name: "hcl config",
			path: ".selfkind.hcl",
			content: `
pinned  = ["SetAgeAsPerson"]
include = ["pkg/**/*.go"]
exclude = ["**/testdata/**"]
`,
			wantPinned:  []string{"SetAgeAsPerson"},
			wantInclude: []string{"pkg/**/*.go"},
			wantExclude: []string{"**/testdata/**"},
		},
		{
			name: "yaml config",
			path: ".selfkind.yaml",
			content: `
pinned:
  - SetAgeAsPerson
  - SetAgeAsBase
`,
			wantPinned: []string{"SetAgeAsPerson", "SetAgeAsBase"},
		},
		{
			name:    "yaml config with unknown field",
			path:    ".selfkind.yaml",
			content: "pinned: []\nunknown: true\n",
			wantErr: true,
		},
		{
			name:    "invalid glob pattern",
			path:    ".selfkind.yaml",
			content: "include:\n  - \"[\"\n",
			wantErr: true,
		},
		{
			name:    "malformed hcl",
			path:    ".selfkind.hcl",
			content: "pinned = [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))

			cfg, err := selfkind.LoadConfig(fs, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPinned, cfg.Pinned)
			assert.Equal(t, tt.wantInclude, cfg.Include)
			assert.Equal(t, tt.wantExclude, cfg.Exclude)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := selfkind.LoadConfig(afero.NewMemMapFs(), "nope.hcl")
	require.Error(t, err)
}

func TestConfigMatchesFile(t *testing.T) {
	tests := []struct {
		name string
		cfg  selfkind.Config
		path string
		want bool
	}{
		{
			name: "empty config matches everything",
			path: "/some/dir/file.go",
			want: true,
		},
		{
			name: "include hit",
			cfg:  selfkind.Config{Include: []string{"**/*.go"}},
			path: "pkg/person/person.go",
			want: true,
		},
		{
			name: "include miss",
			cfg:  selfkind.Config{Include: []string{"pkg/**"}},
			path: "cmd/main.go",
			want: false,
		},
		{
			name: "exclude wins over include",
			cfg: selfkind.Config{
				Include: []string{"**/*.go"},
				Exclude: []string{"**/testdata/**"},
			},
			path: "pkg/selfkind/testdata/shadowed/people.go",
			want: false,
		},
		{
			name: "absolute path",
			cfg:  selfkind.Config{Include: []string{"**/*.go"}},
			path: "/home/user/project/pkg/person/person.go",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.MatchesFile(tt.path))
		})
	}
}

func TestConfigIsPinned(t *testing.T) {
	cfg := selfkind.Config{Pinned: []string{"SetAgeAsPerson"}}
	assert.True(t, cfg.IsPinned("SetAgeAsPerson"))
	assert.False(t, cfg.IsPinned("SetAge"))
}
