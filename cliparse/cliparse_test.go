package cliparse

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{},
			want: Config{Port: 3318, DatabaseURL: "menu.db", DatabaseType: "sqlite"},
		},
		{
			name: "flags override everything",
			args: []string{"-p", "8080", "-d", "/tmp/other.db", "-t", "sqlite"},
			env:  map[string]string{"PORT": "9999", "DATABASE_URL": "ignored", "DATABASE_TYPE": "postgres"},
			want: Config{Port: 8080, DatabaseURL: "/tmp/other.db", DatabaseType: "sqlite"},
		},
		{
			name: "env fallback",
			args: []string{},
			env:  map[string]string{"PORT": "4000", "DATABASE_URL": "postgres://localhost/menu", "DATABASE_TYPE": "postgres"},
			want: Config{Port: 4000, DatabaseURL: "postgres://localhost/menu", DatabaseType: "postgres"},
		},
		{
			name:    "invalid PORT env",
			args:    []string{},
			env:     map[string]string{"PORT": "not-a-port"},
			wantErr: true,
		},
		{
			name:    "postgres requires a URL",
			args:    []string{"-t", "postgres"},
			wantErr: true,
		},
		{
			name:    "unknown database type",
			args:    []string{"-t", "mongodb"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := ParseFlags(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, cfg)
			}
		})
	}
}
