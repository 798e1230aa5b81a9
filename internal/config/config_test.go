package config

import (
	"strings"
	"testing"
)

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("AIRTABLE_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error without AIRTABLE_TOKEN")
	}
	if !strings.Contains(err.Error(), "AIRTABLE_TOKEN") {
		t.Errorf("Load() error = %v, want mention of AIRTABLE_TOKEN", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AIRTABLE_TOKEN", "test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Order.MaxTotal != 500 {
		t.Errorf("MaxTotal = %d, want 500", cfg.Order.MaxTotal)
	}
	if cfg.Payment.Host != "https://monzo.me" {
		t.Errorf("Payment.Host = %q, want https://monzo.me", cfg.Payment.Host)
	}
	if cfg.Payment.Payee == "" {
		t.Error("Payment.Payee is empty")
	}
	if cfg.Order.FallbackContact == "" {
		t.Error("FallbackContact is empty")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Airtable: AirtableConfig{URL: "https://api.airtable.com/v0/app/Requests", Token: "t"},
			Order:    OrderConfig{MaxTotal: 500},
			LogLevel: "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.Airtable.Token = "" },
			wantErr: true,
		},
		{
			name:    "missing airtable url",
			mutate:  func(c *Config) { c.Airtable.URL = "" },
			wantErr: true,
		},
		{
			name:    "zero ceiling",
			mutate:  func(c *Config) { c.Order.MaxTotal = 0 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
