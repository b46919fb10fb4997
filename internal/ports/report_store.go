package ports

import "github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"

// ReportStore persists batch reports for CI artifacts and later browsing.
type ReportStore interface {
	SaveBatch(report domain.BatchReport) (id string, err error)
	SavePDF(report domain.PDFReport) (id string, err error)
}
