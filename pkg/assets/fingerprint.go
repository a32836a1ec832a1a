package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// hashLen is the number of hex digits embedded in fingerprinted names.
const hashLen = 8

// Fingerprint copies every file under srcDir into outDir under a
// content-hashed name and returns the manifest of the mapping. The
// hash depends only on content, so unchanged files keep their names
// across runs and stay cacheable.
func Fingerprint(srcDir, outDir string) (*Manifest, error) {
	manifest := NewManifest()

	err := filepath.Walk(srcDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		hash, err := hashFile(p)
		if err != nil {
			return fmt.Errorf("hash %s: %w", relSlash, err)
		}
		fingerprinted := FingerprintName(relSlash, hash)

		dst := filepath.Join(outDir, filepath.FromSlash(fingerprinted))
		if err := copyFile(p, dst); err != nil {
			return fmt.Errorf("copy %s: %w", relSlash, err)
		}

		manifest.Set(relSlash, fingerprinted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manifest, nil
}

// FingerprintName inserts a hash before the extension:
// "img/logo.png" + "a1b2c3d4" gives "img/logo.a1b2c3d4.png".
// Extensionless names get the hash appended.
func FingerprintName(rel, hash string) string {
	ext := ""
	base := rel
	if i := strings.LastIndex(rel, "."); i > strings.LastIndex(rel, "/") {
		base, ext = rel[:i], rel[i:]
	}
	return base + "." + hash + ext
}

// Hash returns the fingerprint hash of r's content.
func Hash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil))[:hashLen], nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Hash(f)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
