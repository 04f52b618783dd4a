package download

import (
	"io"
	"os"
	"path/filepath"
)

// MoveFile moves a resolved output file out of its scratch directory,
// falling back to copy-and-delete when the rename crosses filesystems.
func MoveFile(source, dest string) error {
	if err := os.Rename(source, dest); err == nil {
		return nil
	}

	return moveCrossDevice(source, dest)
}

// moveCrossDevice copies through a hidden temp file in the destination
// directory so a partially written file never appears under the final name.
func moveCrossDevice(sourcePath, destPath string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	tempDest := filepath.Join(filepath.Dir(destPath), "."+filepath.Base(destPath)+".tmp")

	dst, err := os.Create(tempDest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tempDest)
		return err
	}

	if err := dst.Sync(); err != nil {
		dst.Close()
		os.Remove(tempDest)
		return err
	}

	if err := dst.Close(); err != nil {
		os.Remove(tempDest)
		return err
	}

	if err := os.Rename(tempDest, destPath); err != nil {
		os.Remove(tempDest)
		return err
	}

	// Remove the original file only after copy success
	return os.Remove(sourcePath)
}
