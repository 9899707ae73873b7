// Package document pulls text and embedded images out of an uploaded PDF.
package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kazz187/aisa/pkg/panicerr"
)

// FallbackText replaces the document text when the PDF cannot be read.
const FallbackText = "Could not read PDF. Relying on user instructions only."

func init() {
	// pdfcpu would otherwise create a config dir under the user's home.
	api.DisableConfigDir()
}

type Image struct {
	Name string // page{N}_img{K}.{ext}
	Path string // local path of the extracted file
}

type Result struct {
	Text   string
	Images []Image
	// Degraded is set when the text could not be read and FallbackText is used.
	Degraded bool
}

func (r *Result) ImageNames() []string {
	names := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		names = append(names, img.Name)
	}
	return names
}

// Extract reads pdfPath and writes its images into imageDir. It never fails:
// an unreadable document yields FallbackText and no images, and image
// extraction errors only drop the images.
func Extract(ctx context.Context, pdfPath, imageDir string) *Result {
	text, err := panicerr.Try(func() (string, error) { return extractText(pdfPath) })
	if err != nil {
		slog.WarnContext(ctx, "pdf text extraction failed, continuing with instructions only", "error", err)
		return &Result{Text: FallbackText, Degraded: true}
	}

	images, err := panicerr.Try(func() ([]Image, error) { return extractImages(pdfPath, imageDir) })
	if err != nil {
		slog.WarnContext(ctx, "pdf image extraction failed", "error", err)
		images = nil
	}
	slog.InfoContext(ctx, "extracted document", "text_len", len(text), "images", len(images))
	return &Result{Text: text, Images: images}
}

func extractText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		fmt.Fprintf(&b, "\n--- PDF Page %d Text ---\n", i)
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func extractImages(pdfPath, imageDir string) ([]Image, error) {
	if imageDir == "" {
		return nil, errors.New("image dir is required")
	}
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages, err := api.ExtractImagesRaw(f, nil, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}
	var raw []model.Image
	for _, page := range pages {
		for _, img := range page {
			raw = append(raw, img)
		}
	}
	return writeImages(imageDir, raw)
}

// writeImages stores images as page{N}_img{K}.{ext}. K counts from 1 within a
// page in object number order.
func writeImages(imageDir string, raw []model.Image) ([]Image, error) {
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	sort.Slice(raw, func(i, j int) bool {
		if raw[i].PageNr != raw[j].PageNr {
			return raw[i].PageNr < raw[j].PageNr
		}
		return raw[i].ObjNr < raw[j].ObjNr
	})

	images := make([]Image, 0, len(raw))
	perPage := map[int]int{}
	for _, img := range raw {
		perPage[img.PageNr]++
		name := imageFileName(img.PageNr, perPage[img.PageNr], img.FileType)
		path := filepath.Join(imageDir, name)
		if err := writeImage(path, img); err != nil {
			return nil, err
		}
		images = append(images, Image{Name: name, Path: path})
	}
	return images, nil
}

func writeImage(path string, img model.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

func imageFileName(page, index int, fileType string) string {
	ext := strings.ToLower(strings.TrimPrefix(fileType, "."))
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("page%d_img%d.%s", page, index, ext)
}
