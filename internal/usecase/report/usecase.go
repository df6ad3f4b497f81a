package report

import (
	"context"
	"strings"

	"siged/internal/domain/detective"
	"siged/internal/domain/document"
	"siged/internal/domain/report"
	"siged/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

// Create files an immutable report for a leveled detective.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*report.Report, error) {
	if strings.TrimSpace(in.DetectiveID) == "" {
		return nil, report.ErrMissingDetective
	}
	if in.NumPhotos <= 0 {
		return nil, report.ErrInvalidQuantity
	}
	if !report.DescriptionLongEnough(in.Description) {
		return nil, report.ErrDescriptionTooShort
	}

	var created report.Report
	err := u.uow.WithinTx(ctx, func(doc *document.Document) error {
		d, ok := doc.Detective(in.DetectiveID)
		if !ok {
			return detective.ErrNotFound
		}
		if !d.IsLeveled() {
			return detective.ErrNotLeveled
		}
		created = report.Report{
			ID:          doc.NextReportID(),
			DetectiveID: in.DetectiveID,
			NumPhotos:   in.NumPhotos,
			Description: in.Description,
		}
		doc.Reports = append(doc.Reports, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (u *Usecase) List(ctx context.Context) ([]report.Report, error) {
	var out []report.Report
	err := u.uow.View(ctx, func(doc *document.Document) error {
		out = append([]report.Report{}, doc.Reports...)
		return nil
	})
	return out, err
}
