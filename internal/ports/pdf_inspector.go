package ports

// PageImage describes one image embedded on a PDF page, as far as the
// validator cares: how big it is on disk and in pixels.
type PageImage struct {
	Page   int
	Name   string
	Bytes  int64
	Width  int
	Height int
}

// PDFInspector reads a rendered PDF just deeply enough to count pages and
// enumerate embedded images. Inspection never mutates the file.
type PDFInspector interface {
	PageCount(path string) (int, error)
	Images(path string) ([]PageImage, error)
}
