package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyFileContents copies the contents of the file named src to the file
// named dst. The destination is created or truncated.
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return
	}
	err = out.Sync()
	return
}

// CopyTree copies the whole hierarchy rooted at src into dst, preserving file
// modes. Top-level entries listed in skip are left out, and so is dst itself
// when it happens to live inside src.
func CopyTree(src, dst string, skip []string) error {

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}

	skipped := map[string]bool{}
	for _, name := range skip {
		skipped[name] = true
	}

	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(absSrc, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		top := strings.Split(rel, string(filepath.Separator))[0]
		if skipped[top] {
			if info.IsDir() && rel == top {
				return filepath.SkipDir
			}
			return nil
		}

		// never recurse into the destination
		if path == absDst {
			return filepath.SkipDir
		}

		target := filepath.Join(absDst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := CopyFileContents(path, target); err != nil {
			return fmt.Errorf("copy %s: %s", rel, err)
		}
		return os.Chmod(target, info.Mode())
	}

	return filepath.Walk(absSrc, walkFunc)
}
