package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/sotavant/greetings-skill/internal/quote"
)

func TestParseFlags(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		env          map[string]string
		wantErr      bool
		wantAddr     string
		wantLevel    string
		wantQuoteURL string
		wantDebug    bool
	}{
		{
			name:         "defaults",
			wantAddr:     ":8080",
			wantLevel:    "info",
			wantQuoteURL: quote.DefaultURL,
		},
		{
			name:         "flags",
			args:         []string{"-a", ":9090", "-l", "warn", "-q", "http://quotes.local/random"},
			wantAddr:     ":9090",
			wantLevel:    "warn",
			wantQuoteURL: "http://quotes.local/random",
		},
		{
			name:         "debug_flag",
			args:         []string{"-l", "error", "-debug"},
			wantAddr:     ":8080",
			wantLevel:    "debug",
			wantQuoteURL: quote.DefaultURL,
			wantDebug:    true,
		},
		{
			name:         "debug_env",
			env:          map[string]string{"SKILL_DEBUG": "true"},
			wantAddr:     ":8080",
			wantLevel:    "debug",
			wantQuoteURL: quote.DefaultURL,
			wantDebug:    true,
		},
		{
			name:         "debug_env_beats_log_level",
			args:         []string{"-l", "warn"},
			env:          map[string]string{"SKILL_DEBUG": "1", "LOG_LEVEL": "error"},
			wantAddr:     ":8080",
			wantLevel:    "debug",
			wantQuoteURL: quote.DefaultURL,
			wantDebug:    true,
		},
		{
			name:         "env_overrides_flags",
			args:         []string{"-a", ":9090", "-q", "http://flag.local/random"},
			env:          map[string]string{"RUN_ADDR": ":7070", "QUOTE_URL": "http://env.local/random"},
			wantAddr:     ":7070",
			wantLevel:    "info",
			wantQuoteURL: "http://env.local/random",
		},
		{
			name:    "malformed_debug_env",
			env:     map[string]string{"SKILL_DEBUG": "notabool"},
			wantErr: true,
		},
		{
			name:    "unknown_flag",
			args:    []string{"-z"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"RUN_ADDR", "LOG_LEVEL", "QUOTE_URL", "CARD_IMAGE_URL", "SKILL_DEBUG"} {
				t.Setenv(key, "")
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			fs := flag.NewFlagSet("skill", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			err := parseFlags(fs, tc.args)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.wantAddr, flagRunAddr)
			assert.Equal(t, tc.wantLevel, flagLogLevel)
			assert.Equal(t, tc.wantQuoteURL, flagQuoteURL)
			assert.Equal(t, tc.wantDebug, flagDebug)
		})
	}
}
