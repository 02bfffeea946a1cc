// Package summary renders the cached PNG overview of the countries table.
package summary

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/chainsafe/country-mirror/internal/metrics"
	"github.com/chainsafe/country-mirror/pkg/country"
	"github.com/chainsafe/country-mirror/pkg/countrystore"
)

const (
	width      = 800
	height     = 600
	marginX    = 50
	lineHeight = 30
	topN       = 5
)

// Render triggers, used as metric labels.
const (
	TriggerRefresh  = "refresh"
	TriggerSchedule = "schedule"
)

// ErrNotRendered is returned by Read when no image has been written yet.
var ErrNotRendered = errors.New("summary image not rendered")

// Entry is one line of the top GDP list.
type Entry struct {
	Name         string
	EstimatedGDP int64
}

// Summary is the content drawn onto the image.
type Summary struct {
	Total           int
	LastRefreshedAt *time.Time
	Top             []Entry
}

// Lines returns the text lines in drawing order, title excluded.
func (s *Summary) Lines() []string {
	refreshed := "N/A"
	if s.LastRefreshedAt != nil {
		refreshed = s.LastRefreshedAt.UTC().Format(time.RFC3339)
	}
	lines := []string{
		fmt.Sprintf("Total countries: %d", s.Total),
		"Last refreshed at: " + refreshed,
		"Top 5 countries by GDP:",
	}
	for i, e := range s.Top {
		lines = append(lines, fmt.Sprintf("%d. %s: $%s", i+1, e.Name, formatUSD(e.EstimatedGDP)))
	}
	return lines
}

func formatUSD(v int64) string {
	return humanize.FormatFloat("#,###.##", float64(v))
}

// Renderer draws the summary image from the store and writes it to path.
type Renderer struct {
	reader countrystore.Reader
	path   string
	logger *zap.Logger

	mu        sync.Mutex
	titleFace font.Face
	bodyFace  font.Face
}

// NewRenderer creates a renderer writing to path. Fonts are parsed once here.
func NewRenderer(reader countrystore.Reader, path string, logger *zap.Logger) (*Renderer, error) {
	titleFace, err := newFace(gobold.TTF, 30)
	if err != nil {
		return nil, fmt.Errorf("title font: %w", err)
	}
	bodyFace, err := newFace(goregular.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("body font: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		reader:    reader,
		path:      path,
		logger:    logger,
		titleFace: titleFace,
		bodyFace:  bodyFace,
	}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render reads the current table, draws it and replaces the cached image.
// trigger labels the render in metrics and logs.
func (r *Renderer) Render(ctx context.Context, trigger string) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.collect(ctx)
	if err != nil {
		metrics.SummaryRenders.WithLabelValues(trigger, "error").Inc()
		return nil, err
	}

	if err := r.write(r.draw(s)); err != nil {
		metrics.SummaryRenders.WithLabelValues(trigger, "error").Inc()
		return nil, err
	}

	metrics.SummaryRenders.WithLabelValues(trigger, "success").Inc()
	r.logger.Debug("summary image rendered",
		zap.String("trigger", trigger),
		zap.String("path", r.path),
		zap.Int("total", s.Total))
	return s, nil
}

// Read returns the cached image bytes.
func (r *Renderer) Read() ([]byte, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotRendered
		}
		return nil, fmt.Errorf("failed to read summary image: %w", err)
	}
	return b, nil
}

func (r *Renderer) collect(ctx context.Context) (*Summary, error) {
	countries, err := r.reader.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load countries for summary: %w", err)
	}
	stats, err := r.reader.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats for summary: %w", err)
	}

	country.SortByGDP(countries, true)

	s := &Summary{
		Total:           stats.Total,
		LastRefreshedAt: stats.LastRefreshedAt,
		Top:             make([]Entry, 0, topN),
	}
	for _, c := range countries {
		if len(s.Top) == topN || c.EstimatedGDP == nil {
			break
		}
		s.Top = append(s.Top, Entry{Name: c.Name, EstimatedGDP: *c.EstimatedGDP})
	}
	return s, nil
}

func (r *Renderer) draw(s *Summary) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.titleFace,
		Dot:  fixed.P(marginX, 50),
	}
	d.DrawString("Countries Summary")

	d.Face = r.bodyFace
	for i, line := range s.Lines() {
		d.Dot = fixed.P(marginX, 80+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// write encodes img next to the target and renames it into place, so readers
// never observe a partial file.
func (r *Renderer) write(img image.Image) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp image: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode summary image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp image: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to move summary image into place: %w", err)
	}
	return nil
}
