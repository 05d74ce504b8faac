package curate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/user/daylily/internal/model"
)

// imageCandidates lists the source file names to try for d, in order.
func imageCandidates(d *model.Daylily) []string {
	var names []string
	if name, ok := ImageName(d.ImageURL); ok {
		names = append(names, name)
	}
	if d.Name != "" {
		simple := d.Name + ".jpg"
		if len(names) == 0 || names[0] != simple {
			names = append(names, simple)
		}
	}
	return names
}

// copyImage copies the first usable candidate image into the assets folder
// and returns its name, or the placeholder name when none could be copied.
// The bool reports whether the asset did not exist before the copy.
func (c *Curator) copyImage(d *model.Daylily) (string, bool) {
	for _, name := range imageCandidates(d) {
		if filepath.Base(name) != name {
			c.logger.Warn("ignoring image name with path", zap.String("image", name))
			continue
		}
		src := filepath.Join(c.images, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := checkImage(src); err != nil {
			c.logger.Warn("not an image", zap.String("path", src), zap.Error(err))
			continue
		}
		dst := filepath.Join(c.assets, name)
		_, statErr := os.Stat(dst)
		if err := copyFile(src, dst); err != nil {
			c.logger.Warn("could not copy image", zap.String("path", src), zap.Error(err))
			continue
		}
		return name, errors.Is(statErr, os.ErrNotExist)
	}
	return model.PlaceholderImage, false
}

// checkImage sniffs the file content; the extension is not trusted.
func checkImage(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}
	detected := strings.Split(mt.String(), ";")[0]
	if !strings.HasPrefix(detected, "image/") {
		return fmt.Errorf("detected %s", detected)
	}
	return nil
}

// copyFile copies src to dst, keeping the modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
