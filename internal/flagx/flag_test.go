package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-s", "http://localhost:8000", "-x", "ignored"},
			allowed: []string{"-s"},
			want:    []string{"-s", "http://localhost:8000"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=cfg.json", "-other=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=cfg.json"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-s", "addr"},
			allowed: []string{"-v", "-s"},
			want:    []string{"-v", "-s", "addr"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
