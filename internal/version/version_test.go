package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, VersionTag, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "abagen 1.2.0", Info{Version: "1.2.0"}.String())
	assert.Equal(t, "abagen 1.2.0 (0123456789ab) built 2026-01-01",
		Info{Version: "1.2.0", Commit: "0123456789abcdef", BuildTime: "2026-01-01"}.String())
}
