package sentiment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FetchOptions configures lexicon provisioning.
type FetchOptions struct {
	// Path is the local lexicon file location.
	Path string
	// URL is the download source used when the file is absent.
	URL string
	// SHA256 is an optional pinned hex checksum. When set, both existing
	// and freshly downloaded files must match it.
	SHA256 string
	// Client defaults to a client with a 60s timeout.
	Client *http.Client
	// Stdout receives progress lines; defaults to io.Discard.
	Stdout io.Writer
}

// Ensure makes the lexicon available at opts.Path, downloading it when
// missing. An existing file with a matching checksum (or any existing file
// when no checksum is pinned) is kept as-is. Failures are reported as
// ErrUnavailable so callers can surface a clear dependency condition.
func Ensure(opts FetchOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("%w: no lexicon path configured", ErrUnavailable)
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	if ok, err := existingMatches(opts.Path, opts.SHA256); err != nil {
		return err
	} else if ok {
		fmt.Fprintf(opts.Stdout, "skip %s (already present)\n", opts.Path)
		return nil
	}

	if opts.URL == "" {
		return fmt.Errorf("%w: %s is missing and no lexicon URL is configured", ErrUnavailable, opts.Path)
	}

	return Fetch(opts)
}

// Fetch downloads the lexicon unconditionally, writing to a temporary file
// and renaming it into place only after the download (and checksum, when
// pinned) succeeds. A partial download never replaces an existing file.
func Fetch(opts FetchOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("%w: no lexicon path configured", ErrUnavailable)
	}
	if opts.URL == "" {
		return fmt.Errorf("%w: no lexicon URL configured", ErrUnavailable)
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create lexicon dir: %w", err)
		}
	}

	fmt.Fprintf(opts.Stdout, "download %s -> %s\n", opts.URL, opts.Path)

	resp, err := client.Get(opts.URL)
	if err != nil {
		return fmt.Errorf("%w: download failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: download failed: %s", ErrUnavailable, resp.Status)
	}

	tmp := opts.Path + ".tmp"
	fh, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(fh, h), resp.Body); err != nil {
		_ = fh.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: download read failed: %v", ErrUnavailable, err)
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if expected := strings.ToLower(opts.SHA256); expected != "" && actual != expected {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: checksum mismatch: expected %s got %s", ErrUnavailable, expected, actual)
	}

	if err := os.Rename(tmp, opts.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("move temp file into place: %w", err)
	}

	fmt.Fprintf(opts.Stdout, "verified %s (sha256=%s)\n", opts.Path, actual)
	return nil
}

// existingMatches reports whether a usable file already sits at path.
// With a pinned checksum the content must match; without one any regular
// file counts.
func existingMatches(path, expected string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat lexicon: %w", err)
	}
	if fi.IsDir() {
		return false, fmt.Errorf("expected file at %s, found directory", path)
	}
	if expected == "" {
		return true, nil
	}
	actual, err := fileSHA256(path)
	if err != nil {
		return false, err
	}
	return actual == strings.ToLower(expected), nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open lexicon for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("read lexicon for checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
