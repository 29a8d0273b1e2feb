package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkendall/sysdash/internal/errors"
)

func TestParseRefresh(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{"empty flag means no override", "", 0, false},
		{"milliseconds", "500ms", 500 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"bare number is invalid", "500", 0, true},
		{"garbage is invalid", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRefresh(tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["init"], "init command should be registered")
	assert.True(t, names["version"], "version command should be registered")
	assert.True(t, names["completion"], "completion command should be registered")
}

func TestRootCommandFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("refresh"))
	assert.NotNil(t, rootCmd.Flags().Lookup("debug"))
}
