package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"packslip/internal/domain/entities"

	"github.com/klauspost/compress/zip"
)

// ArchiveFileName is the name offered to the browser for a bulk download.
const ArchiveFileName = "bulk-packing-slips.zip"

var ErrPackaging = errors.New("failed to package archive")

// PackagingError wraps a failure of the ZIP encoder.
type PackagingError struct {
	Err error
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf("Failed to zip files: %v", e.Err)
}

func (e *PackagingError) Unwrap() []error { return []error{ErrPackaging, e.Err} }

// SanitizeFilename replaces every character outside [A-Za-z0-9_-] with '_',
// one per UTF-16 code unit, so a non-BMP rune such as an emoji becomes "__".
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteString(strings.Repeat("_", max(utf16.RuneLen(r), 1)))
		}
	}
	return b.String()
}

// ArchiveBaseName is the sanitized file stem for a group.
// The sentinel group is named after its 1-indexed position instead.
func ArchiveBaseName(g entities.OrderGroup) string {
	if g.IsSentinel() {
		return fmt.Sprintf("Order-Group-%d", g.Position+1)
	}
	return SanitizeFilename(g.OrderID)
}

// FilenameAllocator hands out unique names in order of appearance:
// base, base_2, base_3, ...
type FilenameAllocator struct {
	counts map[string]int
	used   map[string]struct{}
}

func NewFilenameAllocator() *FilenameAllocator {
	return &FilenameAllocator{
		counts: make(map[string]int),
		used:   make(map[string]struct{}),
	}
}

// Next returns a name derived from base that has not been returned before.
func (a *FilenameAllocator) Next(base string) string {
	a.counts[base]++
	name := base
	if a.counts[base] > 1 {
		name = fmt.Sprintf("%s_%d", base, a.counts[base])
	}
	// A suffixed name can collide with a literal base seen earlier ("A_2").
	for {
		if _, taken := a.used[name]; !taken {
			break
		}
		a.counts[base]++
		name = fmt.Sprintf("%s_%d", base, a.counts[base])
	}
	a.used[name] = struct{}{}
	return name
}

// PackageArchive writes files into a single deflate ZIP, in input order.
func PackageArchive(files []entities.RenderedFile, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if _, dup := seen[f.Name]; dup {
			_ = zw.Close()
			return nil, &PackagingError{Err: fmt.Errorf("duplicate entry %q", f.Name)}
		}
		seen[f.Name] = struct{}{}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			_ = zw.Close()
			return nil, &PackagingError{Err: err}
		}
		if _, err := w.Write(f.Content); err != nil {
			_ = zw.Close()
			return nil, &PackagingError{Err: err}
		}
	}
	if err := zw.Close(); err != nil {
		return nil, &PackagingError{Err: err}
	}
	return buf.Bytes(), nil
}
