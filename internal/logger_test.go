package internal

import "testing"

func TestSetVerbose(t *testing.T) {
	original := logLevel
	defer SetLogLevel(original)

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("logLevel = %v, want %v", logLevel, LogLevelDebug)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("logLevel = %v, want %v", logLevel, LogLevelInfo)
	}
}

func TestSetLogLevel(t *testing.T) {
	original := logLevel
	defer SetLogLevel(original)

	for _, level := range []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug} {
		SetLogLevel(level)
		if logLevel != level {
			t.Errorf("logLevel = %v, want %v", logLevel, level)
		}
	}
}
