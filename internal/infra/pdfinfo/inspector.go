// Package pdfinfo inspects rendered PDFs with pdfcpu, just deeply enough
// for the rendering checks: page counts and embedded image sizes.
package pdfinfo

import (
	"bytes"
	"image"
	"io"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

type Inspector struct{}

func NewInspector() *Inspector { return &Inspector{} }

var _ ports.PDFInspector = (*Inspector)(nil)

func (i *Inspector) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "pdfinfo.pagecount",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return n, nil
}

// Images lists every embedded image with its byte size and, where the image
// bytes decode as PNG/JPEG, its pixel dimensions. Exotic encodings keep
// zero dimensions and fall out as non-qualifying.
func (i *Inspector) Images(path string) ([]ports.PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pdfinfo.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	pages, err := api.ExtractImagesRaw(f, nil, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pdfinfo.extract",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var out []ports.PageImage
	for _, byObj := range pages {
		for _, img := range byObj {
			data, err := io.ReadAll(img)
			if err != nil {
				continue
			}

			pi := ports.PageImage{
				Page:  img.PageNr,
				Name:  img.Name,
				Bytes: int64(len(data)),
			}
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
				pi.Width = cfg.Width
				pi.Height = cfg.Height
			}
			out = append(out, pi)
		}
	}

	return out, nil
}
