// Package curate moves varieties between the scraped master dataset and the
// published gallery dataset, copying their images into the site assets.
package curate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/user/daylily/internal/config"
	"github.com/user/daylily/internal/logging"
	"github.com/user/daylily/internal/model"
	"github.com/user/daylily/internal/storage"
)

// MaxSimilar bounds the suggestions returned by Similar.
const MaxSimilar = 5

// NoImage is an asset shared between varieties; it is never deleted.
const NoImage = "no-image.jpg"

// publishedStore is the part of storage.Dataset the curator edits.
type publishedStore interface {
	ReadAllOrEmpty() ([]*model.Daylily, error)
	WriteAll(records []*model.Daylily) error
}

// Curator edits the published dataset from the master dataset.
type Curator struct {
	published publishedStore
	master    *storage.Dataset
	images    string
	assets    string
	logger    *zap.Logger
}

// New returns a curator that publishes into the dataset at publishedPath.
func New(publishedPath string, cfg config.CurateConfig, logger *zap.Logger) *Curator {
	return &Curator{
		published: storage.NewDataset(publishedPath),
		master:    storage.NewDataset(cfg.Master),
		images:    cfg.Images,
		assets:    cfg.Assets,
		logger:    logging.OrNop(logger).Named("curate"),
	}
}

// NormalizeName lower-cases s and collapses runs of whitespace, so names
// compare equal regardless of spacing and case.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ImageName extracts the image file name from an image URL: the decoded
// last path segment. Empty, "none" and "no image available" mean no image.
func ImageName(imageURL string) (string, bool) {
	lower := strings.ToLower(imageURL)
	if imageURL == "" || lower == "none" || strings.Contains(lower, "no image available") {
		return "", false
	}

	name := imageURL[strings.LastIndex(imageURL, "/")+1:]
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" || strings.ToLower(name) == "none" {
		return "", false
	}
	return name, true
}

// Find looks name up in the published dataset, then in the master. The
// bool reports whether the returned variety is published.
func (c *Curator) Find(name string) (*model.Daylily, bool, error) {
	key := NormalizeName(name)
	if key == "" {
		return nil, false, fmt.Errorf("%w: empty name", model.ErrVarietyNotFound)
	}

	published, err := c.published.ReadAllOrEmpty()
	if err != nil {
		return nil, false, err
	}
	if d := findByName(published, key); d != nil {
		return d, true, nil
	}

	master, err := c.readMaster()
	if err != nil {
		return nil, false, err
	}
	if d := findByName(master, key); d != nil {
		return d, false, nil
	}

	return nil, false, fmt.Errorf("%w: %s", model.ErrVarietyNotFound, name)
}

// Similar returns up to MaxSimilar master names that contain any word of
// name, in master order.
func (c *Curator) Similar(name string) ([]string, error) {
	words := strings.Fields(NormalizeName(name))
	if len(words) == 0 {
		return nil, nil
	}

	master, err := c.readMaster()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, d := range master {
		current := NormalizeName(d.Name)
		for _, w := range words {
			if strings.Contains(current, w) {
				names = append(names, d.Name)
				break
			}
		}
		if len(names) == MaxSimilar {
			break
		}
	}
	return names, nil
}

// Result is the outcome for one requested name.
type Result struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Err   error  `json:"-"`
}

// Report collects the results of a Publish or Unpublish call.
type Report struct {
	Results []Result
}

// Changed is the number of names that were applied.
func (r Report) Changed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Err joins the per-name failures, or returns nil if every name succeeded.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Publish adds master varieties to the published dataset. Each variety must
// have a name, hybridizer and year. Its scrape timestamp is dropped and its
// image is copied into the assets folder, falling back to the placeholder.
// All additions are written in one atomic rewrite. Images copied for a
// write that fails are removed again.
func (c *Curator) Publish(names ...string) (Report, error) {
	var report Report
	var copied []string

	published, err := c.published.ReadAllOrEmpty()
	if err != nil {
		return report, err
	}
	master, err := c.readMaster()
	if err != nil {
		return report, err
	}

	for _, name := range names {
		key := NormalizeName(name)
		res := Result{Name: name}

		switch d := findByName(master, key); {
		case findByName(published, key) != nil:
			res.Err = model.ErrAlreadyPublished
		case d == nil:
			res.Err = model.ErrVarietyNotFound
		default:
			if err := requireFields(d); err != nil {
				res.Err = err
				break
			}
			entry := *d
			entry.ScrapedAt = ""
			image, fresh := c.copyImage(d)
			if fresh {
				copied = append(copied, image)
			}
			entry.ImageURL = image
			published = append(published, &entry)
			res.Name = entry.Name
			res.Image = entry.ImageURL
			c.logger.Info("variety published", zap.String("name", entry.Name), zap.String("image", entry.ImageURL))
		}
		report.Results = append(report.Results, res)
	}

	if report.Changed() == 0 {
		return report, nil
	}
	if err := c.published.WriteAll(published); err != nil {
		for _, image := range copied {
			c.removeImage(image)
		}
		return report, err
	}
	return report, nil
}

// Unpublish removes varieties from the published dataset and deletes their
// asset images. Every published entry with a matching name is removed.
// Images are deleted only once the rewrite has succeeded.
func (c *Curator) Unpublish(names ...string) (Report, error) {
	var report Report
	var stale []string

	published, err := c.published.ReadAllOrEmpty()
	if err != nil {
		return report, err
	}

	for _, name := range names {
		key := NormalizeName(name)
		res := Result{Name: name}

		kept := published[:0:0]
		for _, d := range published {
			if NormalizeName(d.Name) != key {
				kept = append(kept, d)
				continue
			}
			res.Name = d.Name
			res.Image = d.ImageURL
			if !slices.Contains(stale, d.ImageURL) {
				stale = append(stale, d.ImageURL)
			}
		}

		if len(kept) == len(published) {
			res.Err = model.ErrNotPublished
		} else {
			published = kept
			c.logger.Info("variety unpublished", zap.String("name", res.Name))
		}
		report.Results = append(report.Results, res)
	}

	if report.Changed() == 0 {
		return report, nil
	}
	if err := c.published.WriteAll(published); err != nil {
		return report, err
	}
	for _, image := range stale {
		c.removeImage(image)
	}
	return report, nil
}

func (c *Curator) readMaster() ([]*model.Daylily, error) {
	records, skipped, err := c.master.ReadLenient()
	if err != nil {
		return nil, fmt.Errorf("master dataset: %w", err)
	}
	if len(skipped) > 0 {
		c.logger.Warn("skipped unreadable master lines", zap.String("path", c.master.Path()), zap.Ints("lines", skipped))
	}
	return records, nil
}

func (c *Curator) removeImage(image string) {
	if image == "" || image == NoImage || image == model.PlaceholderImage {
		return
	}
	path := filepath.Join(c.assets, image)
	if err := os.Remove(path); err != nil {
		c.logger.Warn("could not remove image", zap.String("path", path), zap.Error(err))
	}
}

func findByName(records []*model.Daylily, key string) *model.Daylily {
	for _, d := range records {
		if d.Name != "" && NormalizeName(d.Name) == key {
			return d
		}
	}
	return nil
}

func requireFields(d *model.Daylily) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"hybridizer", d.Hybridizer},
		{"year", d.Year},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", model.ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}
