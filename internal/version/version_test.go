package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.True(t, strings.HasPrefix(info.Full(), info.Version+" ("))
}

func TestFillFrom(t *testing.T) {
	info := Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}
	info.fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildDate)
}

func TestFillFrom_KeepsLinkerValues(t *testing.T) {
	info := Info{Version: "v0.3.0", Commit: "deadbeef", BuildDate: "today"}
	info.fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "deadbeef", info.Commit)
}
