package sync

import (
	"io/fs"
	"path/filepath"

	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/dotskills/dotskills/pkg/filesystem"
)

// copyFile copies a single file, preserving the source permission bits
func copyFile(fsys filesystem.FS, src, dst string) (int64, error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(dst))
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot write %s", dst)
	}

	return int64(len(data)), nil
}

// copyTree recursively copies a directory, preserving internal structure.
// It returns the total bytes copied.
func copyTree(fsys filesystem.FS, src, dst string) (int64, error) {
	if err := fsys.MkdirAll(dst, 0755); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	var total int64
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			n, err := copyTree(fsys, srcPath, dstPath)
			if err != nil {
				return total, err
			}
			total += n
			continue
		}

		n, err := copyFile(fsys, srcPath, dstPath)
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

// treesEqual reports whether two directory trees have identical structure
// and file contents
func treesEqual(fsys filesystem.FS, a, b string) (bool, error) {
	aEntries, err := fsys.ReadDir(a)
	if err != nil {
		return false, err
	}
	bEntries, err := fsys.ReadDir(b)
	if err != nil {
		return false, err
	}

	if len(aEntries) != len(bEntries) {
		return false, nil
	}

	bByName := make(map[string]fs.DirEntry, len(bEntries))
	for _, e := range bEntries {
		bByName[e.Name()] = e
	}

	for _, ae := range aEntries {
		be, ok := bByName[ae.Name()]
		if !ok || ae.IsDir() != be.IsDir() {
			return false, nil
		}

		aPath := filepath.Join(a, ae.Name())
		bPath := filepath.Join(b, ae.Name())

		if ae.IsDir() {
			equal, err := treesEqual(fsys, aPath, bPath)
			if err != nil || !equal {
				return equal, err
			}
			continue
		}

		equal, err := filesEqual(fsys, aPath, bPath)
		if err != nil || !equal {
			return equal, err
		}
	}

	return true, nil
}

// filesEqual reports whether two files have identical contents
func filesEqual(fsys filesystem.FS, a, b string) (bool, error) {
	aData, err := fsys.ReadFile(a)
	if err != nil {
		return false, err
	}
	bData, err := fsys.ReadFile(b)
	if err != nil {
		return false, err
	}
	return string(aData) == string(bData), nil
}
