package copier

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/walteh/lessoncopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const compareChunk = 32 * 1024

// compareFiles reports whether writing src over dst would create, change or
// leave dst as it is.
func compareFiles(src, dst string, srcInfo fs.FileInfo) (status.FileStatus, error) {
	dstInfo, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return status.StatusNew, nil
	}
	if err != nil {
		return status.StatusUnknown, errors.Errorf("checking %s: %w", dst, err)
	}
	if dstInfo.IsDir() {
		return status.StatusUnknown, errors.Errorf("destination %s is a directory", dst)
	}
	if dstInfo.Size() != srcInfo.Size() {
		return status.StatusModified, nil
	}

	same, err := sameContent(src, dst)
	if err != nil {
		return status.StatusUnknown, err
	}
	if same {
		return status.StatusUnchanged, nil
	}
	return status.StatusModified, nil
}

func sameContent(a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, errors.Errorf("opening %s: %w", a, err)
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return false, errors.Errorf("opening %s: %w", b, err)
	}
	defer fb.Close()

	ra, rb := bufio.NewReaderSize(fa, compareChunk), bufio.NewReaderSize(fb, compareChunk)
	bufA, bufB := make([]byte, compareChunk), make([]byte, compareChunk)
	for {
		na, errA := io.ReadFull(ra, bufA)
		nb, errB := io.ReadFull(rb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		doneA := errors.Is(errA, io.EOF) || errors.Is(errA, io.ErrUnexpectedEOF)
		doneB := errors.Is(errB, io.EOF) || errors.Is(errB, io.ErrUnexpectedEOF)
		if errA != nil && !doneA {
			return false, errors.Errorf("reading %s: %w", a, errA)
		}
		if errB != nil && !doneB {
			return false, errors.Errorf("reading %s: %w", b, errB)
		}
		if doneA || doneB {
			return doneA && doneB, nil
		}
	}
}

// writeFileAtomic streams src into a temp file next to dst and renames it
// into place.
func writeFileAtomic(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	// a top-level file copy may target a directory nobody created yet
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Errorf("creating parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
