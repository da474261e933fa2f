package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://localhost:8080/api", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8080/api"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=radar.json", "-z"},
			allowed: []string{"--config"},
			want:    []string{"--config=radar.json"},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-a", "-s", "20"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", "-s", "20"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x", "-b", "y"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"radar", "-a", "http://example.com", "-c", "conf.json"}
	require.Equal(t, "conf.json", JSONConfigPath())

	os.Args = []string{"radar", "--config=other.json"}
	require.Equal(t, "other.json", JSONConfigPath())

	os.Args = []string{"radar", "-config", "long.json"}
	require.Equal(t, "long.json", JSONConfigPath())

	os.Args = []string{"radar", "-a", "http://example.com"}
	require.Equal(t, "", JSONConfigPath())
}
