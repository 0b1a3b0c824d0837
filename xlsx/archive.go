package xlsx

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inkleaf/xlsxgen/security"
)

// WriteFile is the top-level, product write path: it runs policy's hooks
// around a write of wb, then assembles the resulting parts into a
// deflate-compressed archive at destPath. A nil policy uses a permissive
// security.DefaultPolicy that logs nowhere.
//
// The archive is built in a fresh per-call temporary directory (named with
// a UUID, per the concurrency model's "disjoint temp trees" guarantee) and
// only renamed into place once every part has been written successfully;
// on any failure the temp tree is removed and destPath is left untouched.
// Error details never include the temp directory's path.
func WriteFile(wb *Workbook, destPath string, policy security.SecurityPolicy) (err error) {
	// Drop the file paths carried by OS-level causes before returning.
	defer func() {
		var xe *Error
		if !errors.As(err, &xe) {
			return
		}
		var pe *os.PathError
		var le *os.LinkError
		if errors.As(xe.Err, &pe) {
			xe.Err = pe.Err
		} else if errors.As(xe.Err, &le) {
			xe.Err = le.Err
		}
	}()

	if policy == nil {
		policy = security.NewDefaultPolicy(nil)
	}

	if err := policy.CheckRateLimit(); err != nil {
		policy.Log("rate_limited", map[string]any{"dest": filepath.Base(destPath)})
		return wrapErr(ErrRateLimit, "write rejected by rate limiter", err)
	}
	if err := policy.ValidateFilePath(destPath); err != nil {
		policy.Log("path_denied", map[string]any{"dest": filepath.Base(destPath)})
		return wrapErr(ErrSecurity, "destination path rejected by policy", err)
	}
	for _, img := range wb.Images() {
		if err := policy.ValidateImageBytes(string(img.Format), img.Data); err != nil {
			kind := ErrSuspiciousFile
			if errors.Is(err, security.ErrTooLarge) {
				kind = ErrFileSizeLimit
			}
			policy.Log("image_rejected", map[string]any{"image_id": img.ID, "reason": err.Error()})
			return wrapErr(kind, "image "+img.ID+" rejected by policy", err)
		}
	}

	policy.Log("write_started", map[string]any{"dest": filepath.Base(destPath), "sheets": len(wb.Sheets), "images": len(wb.Images())})

	tmpDir, err := os.MkdirTemp("", "xlsxgen-"+uuid.New().String())
	if err != nil {
		return wrapErr(ErrFileWrite, "creating temporary build directory", err)
	}
	defer os.RemoveAll(tmpDir)

	tmpArchive := filepath.Join(tmpDir, "package.xlsx")
	f, err := os.Create(tmpArchive)
	if err != nil {
		return wrapErr(ErrFileWrite, "creating temporary archive", err)
	}

	zs := newZipStorage(f)
	if err := Write(wb, zs); err != nil {
		f.Close()
		policy.Log("write_failed", map[string]any{"dest": filepath.Base(destPath)})
		return err
	}
	if err := zs.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return wrapErr(ErrFileWrite, "closing temporary archive", err)
	}

	sum, err := fileSHA256(tmpArchive)
	if err != nil {
		return wrapErr(ErrFileWrite, "checksumming archive", err)
	}

	if err := os.Rename(tmpArchive, destPath); err != nil {
		return wrapErr(ErrFileWrite, "publishing archive to destination", err)
	}

	policy.RecordChecksum(destPath, sum)
	policy.Log("write_completed", map[string]any{"dest": filepath.Base(destPath), "sha256": sum})

	return nil
}

func fileSHA256(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
