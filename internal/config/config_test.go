package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDevConfig() *Config {
	return &Config{
		Port:       "8080",
		JWTSecret:  "dev-secret",
		DBDriver:   "sqlite",
		SQLitePath: "test.db",
		Env:        "development",
	}
}

func validProdConfig() *Config {
	return &Config{
		Port:       "8080",
		JWTSecret:  "a-production-secret-of-sufficient-length!!",
		DBDriver:   "postgres",
		DBHost:     "db.internal",
		DBPassword: "sTr0ng-db-pass",
		DBSSLMode:  "require",
		Env:        "production",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		cfg     *Config
		wantErr string
	}{
		{name: "dev defaults ok", cfg: validDevConfig()},
		{name: "prod ok", cfg: validProdConfig()},
		{
			name: "missing port",
			cfg:  validDevConfig(), mutate: func(c *Config) { c.Port = "" },
			wantErr: "PORT is required",
		},
		{
			name: "missing jwt secret",
			cfg:  validDevConfig(), mutate: func(c *Config) { c.JWTSecret = "" },
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "unknown driver",
			cfg:  validDevConfig(), mutate: func(c *Config) { c.DBDriver = "mysql" },
			wantErr: "unsupported DB_DRIVER",
		},
		{
			name: "prod default jwt secret rejected",
			cfg:  validProdConfig(), mutate: func(c *Config) { c.JWTSecret = "your-secret-key-change-in-production" },
			wantErr: "must be changed from the default",
		},
		{
			name: "prod short jwt secret rejected",
			cfg:  validProdConfig(), mutate: func(c *Config) { c.JWTSecret = "short" },
			wantErr: "at least 32 characters",
		},
		{
			name: "prod sqlite rejected",
			cfg:  validProdConfig(), mutate: func(c *Config) { c.DBDriver = "sqlite" },
			wantErr: "only supported outside production",
		},
		{
			name: "prod weak db password rejected",
			cfg:  validProdConfig(), mutate: func(c *Config) { c.DBPassword = "password" },
			wantErr: "strong DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.cfg)
			}
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
