package security

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyIsPermissive(t *testing.T) {
	p := NewDefaultPolicy(nil)
	assert.NoError(t, p.CheckRateLimit())
	assert.NoError(t, p.ValidateFilePath("/anywhere/at/all.xlsx"))
	assert.NoError(t, p.ValidateImageBytes("png", make([]byte, 1<<20)))
}

func TestValidateImageBytesEnforcesSizeCaps(t *testing.T) {
	p := NewDefaultPolicy(nil)
	p.SizeCaps = map[string]int64{"png": 10}
	err := p.ValidateImageBytes("png", make([]byte, 11))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestValidateImageBytesRejectsBannedMarkers(t *testing.T) {
	p := NewDefaultPolicy(nil)
	err := p.ValidateImageBytes("png", []byte("before <script>alert(1)</script> after"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuarantined))
}

func TestValidateFilePathRestrictsToAllowedDirs(t *testing.T) {
	dir := t.TempDir()
	p := NewDefaultPolicy(nil)
	p.AllowedDirs = []string{dir}

	assert.NoError(t, p.ValidateFilePath(dir+"/out.xlsx"))
	assert.ErrorIs(t, p.ValidateFilePath("/elsewhere/out.xlsx"), ErrPathDenied)
}

func TestRecordChecksumNoopByDefault(t *testing.T) {
	p := NewDefaultPolicy(nil)
	p.RecordChecksum("out.xlsx", "deadbeef")
	assert.Empty(t, p.Checksums())

	p.RecordChecksums = true
	p.RecordChecksum("out.xlsx", "deadbeef")
	assert.Equal(t, "deadbeef", p.Checksums()["out.xlsx"])
}

func TestCheckRateLimitDelegatesToLimiter(t *testing.T) {
	p := NewDefaultPolicy(nil)
	p.RateLimiter = NewSlidingWindowLimiter(1, time.Minute)
	assert.NoError(t, p.CheckRateLimit())
	assert.ErrorIs(t, p.CheckRateLimit(), ErrRateLimited)
}
