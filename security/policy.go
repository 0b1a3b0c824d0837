// Package security gates and audits package writes. It is the pluggable
// collaborator the write pipeline invokes around a write: rate limiting,
// file-path validation, image quarantine, structured event logging, and
// optional checksum recording. Nothing in this package is global; every
// hook hangs off a SecurityPolicy value a caller constructs and passes
// explicitly into the write entry point.
package security

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors identifying which hook vetoed a write, so a caller (or
// the engine wrapping this package) can classify the failure with
// errors.Is instead of string matching.
var (
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrPathDenied    = errors.New("file path denied")
	ErrTooLarge      = errors.New("image exceeds size cap for its format")
	ErrQuarantined   = errors.New("image payload contains a banned marker")
)

// SecurityPolicy is invoked by the write pipeline around a write:
// CheckRateLimit before any file is created, ValidateFilePath against the
// destination, ValidateImageBytes once per registered image before it is
// written to xl/media/, Log for every notable event along the way, and
// RecordChecksum once with the finished archive's destination path after
// it has been moved into place.
type SecurityPolicy interface {
	CheckRateLimit() error
	ValidateFilePath(path string) error
	ValidateImageBytes(format string, data []byte) error
	Log(event string, fields map[string]any)
	RecordChecksum(path, sha256Hex string)
}

// DefaultPolicy is the permissive default: no rate cap, no path
// restriction, no quarantine, checksum recording off. Set any field to
// turn the corresponding check on; a nil RateLimiter means unlimited.
type DefaultPolicy struct {
	RateLimiter *SlidingWindowLimiter

	// AllowedDirs, if non-empty, restricts ValidateFilePath to paths under
	// one of these directories (after Clean). Empty means unrestricted.
	AllowedDirs []string

	// BannedSubstrings are checked case-insensitively against an image's
	// payload decoded as text. A nil slice uses DefaultBannedSubstrings.
	BannedSubstrings []string

	// SizeCaps maps an image format ("gif", "png", "jpeg") to its maximum
	// payload size in bytes. A nil map uses DefaultSizeCaps.
	SizeCaps map[string]int64

	// RecordChecksums turns RecordChecksum from a no-op into a recorder
	// that stores sha256 hex digests by path, retrievable via
	// Checksums.
	RecordChecksums bool
	checksums       map[string]string

	logger Logger
}

// NewDefaultPolicy returns a DefaultPolicy with every check disabled
// except logging, which goes to logger (use NopLogger{} to discard).
func NewDefaultPolicy(logger Logger) *DefaultPolicy {
	if logger == nil {
		logger = NopLogger{}
	}
	return &DefaultPolicy{logger: logger}
}

func (p *DefaultPolicy) CheckRateLimit() error {
	if p.RateLimiter == nil {
		return nil
	}
	if !p.RateLimiter.Allow() {
		return ErrRateLimited
	}
	return nil
}

func (p *DefaultPolicy) ValidateFilePath(path string) error {
	if len(p.AllowedDirs) == 0 {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ErrPathDenied
	}
	for _, dir := range p.AllowedDirs {
		allowedAbs, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if abs == allowedAbs || strings.HasPrefix(abs, allowedAbs+string(filepath.Separator)) {
			return nil
		}
	}
	return ErrPathDenied
}

func (p *DefaultPolicy) ValidateImageBytes(format string, data []byte) error {
	caps := p.SizeCaps
	if caps == nil {
		caps = DefaultSizeCaps
	}
	if cap, ok := caps[format]; ok && int64(len(data)) > cap {
		return ErrTooLarge
	}

	banned := p.BannedSubstrings
	if banned == nil {
		banned = DefaultBannedSubstrings
	}
	text := strings.ToLower(string(data))
	for _, marker := range banned {
		if strings.Contains(text, strings.ToLower(marker)) {
			return ErrQuarantined
		}
	}
	return nil
}

func (p *DefaultPolicy) Log(event string, fields map[string]any) {
	p.logger.Log(event, fields)
}

func (p *DefaultPolicy) RecordChecksum(path, sha256Hex string) {
	if !p.RecordChecksums {
		return
	}
	if p.checksums == nil {
		p.checksums = map[string]string{}
	}
	p.checksums[path] = sha256Hex
}

// Checksums returns the recorded path->sha256 map. Empty unless
// RecordChecksums is true.
func (p *DefaultPolicy) Checksums() map[string]string {
	return p.checksums
}

// DefaultSizeCaps are the per-format payload size ceilings.
var DefaultSizeCaps = map[string]int64{
	"gif":  10 << 20,
	"png":  20 << 20,
	"jpeg": 15 << 20,
}

// DefaultBannedSubstrings are script-injection markers rejected when found
// in an image payload decoded as text — a cheap check against a polyglot
// file (a PNG that is also valid HTML/JS) masquerading as pure raster data.
var DefaultBannedSubstrings = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
}
