package figure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG renders f at dpi and encodes it to w.
func WritePNG(w io.Writer, f *Figure, dpi int) error {
	c, err := f.Render(dpi)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("encode %s: %w", f.Name, err)
	}
	return nil
}

// Save writes f into dir, creating it if needed, and returns the path of
// the image.
func Save(
	f *Figure,
	dir string,
	dpi int,
) (
	string, error,
) {

	// Make output folder if it doesn't already exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, f.FileName())
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(file)
	if err := WritePNG(w, f, dpi); err != nil {
		file.Close()
		return "", err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}
