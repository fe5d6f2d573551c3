// Package export pushes completed assessments to external lead systems.
package export

import (
	"context"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// Exporter sends a generated report to an external destination and returns
// the destination-side record identifier.
type Exporter interface {
	Export(ctx context.Context, rpt *model.Report) (string, error)
}
