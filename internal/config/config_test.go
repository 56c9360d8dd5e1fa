package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    AppConfig
		wantErr bool
	}{
		{
			name: "defaults",
			want: AppConfig{
				RuntimePath: filepath.Join("/home/tester", ".undoable"),
				Accumulator: 2,
				Addend:      3,
				AddendSteps: []int{4, 1},
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"UNDOABLE_RUNTIME_PATH": "/tmp/undoable",
				"UNDOABLE_ACCUMULATOR":  "-7",
				"UNDOABLE_ADDEND":       "10",
				"UNDOABLE_ADDEND_STEPS": "1,2,3",
			},
			want: AppConfig{
				RuntimePath: "/tmp/undoable",
				Accumulator: -7,
				Addend:      10,
				AddendSteps: []int{1, 2, 3},
			},
		},
		{
			name: "relative runtime path",
			env:  map[string]string{"UNDOABLE_RUNTIME_PATH": "state"},
			want: AppConfig{
				RuntimePath: filepath.Join("/home/tester", "state"),
				Accumulator: 2,
				Addend:      3,
				AddendSteps: []int{4, 1},
			},
		},
		{
			name:    "invalid accumulator",
			env:     map[string]string{"UNDOABLE_ACCUMULATOR": "two"},
			wantErr: true,
		},
		{
			name:    "invalid steps",
			env:     map[string]string{"UNDOABLE_ADDEND_STEPS": "4,x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", "/home/tester")
			for _, key := range []string{"UNDOABLE_RUNTIME_PATH", "UNDOABLE_ACCUMULATOR", "UNDOABLE_ADDEND", "UNDOABLE_ADDEND_STEPS"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := ParseAppConfig()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestGetRuntimePath(t *testing.T) {
	t.Setenv("UNDOABLE_RUNTIME_PATH", "/opt/undoable")
	assert.Equal(t, "/opt/undoable", GetRuntimePath())

	t.Setenv("HOME", "/home/tester")
	t.Setenv("UNDOABLE_RUNTIME_PATH", "")
	assert.Equal(t, filepath.Join("/home/tester", ".undoable"), GetRuntimePath())

	t.Setenv("UNDOABLE_RUNTIME_PATH", "rel")
	assert.Equal(t, filepath.Join("/home/tester", "rel"), GetRuntimePath())
}

func TestIsDebug(t *testing.T) {
	t.Setenv("UNDOABLE_DEBUG", "1")
	assert.True(t, IsDebug())

	t.Setenv("UNDOABLE_DEBUG", "")
	assert.False(t, IsDebug())
}

func TestGetEnvPath(t *testing.T) {
	t.Setenv("UNDOABLE_RUNTIME_PATH", "/srv/undoable")
	assert.Equal(t, "/srv/undoable/.env", GetEnvPath())
}
