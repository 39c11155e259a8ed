package config

import (
	"testing"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		bind    string
		level   string
		file    string
		wantErr bool
	}{
		{
			name:  "defaults",
			bind:  ":8080",
			level: "INFO",
		},
		{
			name:  "bind",
			env:   map[string]string{"TRIVIA_BIND": "127.0.0.1:3000", "LOG_LEVEL": "DEBUG"},
			bind:  "127.0.0.1:3000",
			level: "DEBUG",
		},
		{
			name:  "port overrides bind port",
			env:   map[string]string{"TRIVIA_BIND": "127.0.0.1:3000", "PORT": "9090"},
			bind:  "127.0.0.1:9090",
			level: "INFO",
		},
		{
			name:  "port alone",
			env:   map[string]string{"PORT": "3000", "TRIVIA_QUESTIONS": "q.yml"},
			bind:  ":3000",
			level: "INFO",
			file:  "q.yml",
		},
		{
			name:    "bad port",
			env:     map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "bad bind",
			env:     map[string]string{"TRIVIA_BIND": "localhost"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := load(envOf(tc.env))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.Bind != tc.bind {
				t.Errorf("expected bind %q, got %q", tc.bind, cfg.Bind)
			}
			if cfg.LogLevel != tc.level {
				t.Errorf("expected level %q, got %q", tc.level, cfg.LogLevel)
			}
			if cfg.QuestionsFile != tc.file {
				t.Errorf("expected file %q, got %q", tc.file, cfg.QuestionsFile)
			}
		})
	}
}

func TestSetPort(t *testing.T) {
	cfg := &Config{Bind: "0.0.0.0:8080"}
	if err := cfg.SetPort("3000"); err != nil {
		t.Fatalf("set port: %v", err)
	}
	if cfg.Bind != "0.0.0.0:3000" || cfg.Port() != "3000" {
		t.Fatalf("unexpected bind %q", cfg.Bind)
	}
	if err := cfg.SetPort("70000"); err == nil {
		t.Fatal("expected error for out of range port")
	}
}
