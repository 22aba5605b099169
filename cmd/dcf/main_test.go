package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Dispatch(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "help", args: []string{"--help"}, wantCode: 0, wantStdout: "Usage: dcf"},
		{name: "unknown", args: []string{"irr"}, wantCode: 2, wantStderr: `unknown command "irr"`},
		{
			name:       "default prompt",
			args:       []string{"-chart", "none"},
			stdin:      "1\n100\n10\n",
			wantCode:   0,
			wantStdout: "The Discounted Cash Flow (DCF) valuation is: $90.91",
		},
		{
			name:       "explicit prompt",
			args:       []string{"prompt", "-chart", "text"},
			stdin:      "2\n100\n100\n0\n",
			wantCode:   0,
			wantStdout: "Projected Cash Flows",
		},
		{
			name:       "json",
			args:       []string{"json"},
			stdin:      `{"cash_flows":[100,100,100],"discount_rate":0}`,
			wantCode:   0,
			wantStdout: `"dcf_value":300`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, stderr.String())
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("DCF_CHART_MODE", "window")

	var stdout, stderr bytes.Buffer
	code := run([]string{"prompt"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "config:")
}
