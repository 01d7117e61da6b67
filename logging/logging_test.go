package logging

import (
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{"", log.InfoLevel, false},
		{"info", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"bogus", log.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if tt.wantErr {
			require.Error(t, err)
		} else {
			require.NoError(t, err)
		}
		require.Equal(t, tt.want, got)
	}
}

func TestConfigure_AcceptsKnownLevels(t *testing.T) {
	require.NoError(t, Configure("debug"))
	require.NoError(t, Configure("warn"))
	require.NoError(t, Configure(""))
}

func TestConfigure_RejectsUnknownLevel(t *testing.T) {
	require.Error(t, Configure("bogus"))
}
