package repair

import (
	"context"

	"github.com/sirupsen/logrus"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	"github.com/ivcho02/mechanic-api/internal/quote"
)

type GenerateQuote struct {
	repo     domain.Repository
	renderer *quote.Renderer
	archiver *quote.Archiver
	log      *logrus.Logger
}

func NewGenerateQuote(
	repo domain.Repository,
	renderer *quote.Renderer,
	archiver *quote.Archiver,
	log *logrus.Logger,
) *GenerateQuote {
	return &GenerateQuote{
		repo:     repo,
		renderer: renderer,
		archiver: archiver,
		log:      log,
	}
}

// Execute renders the quote PDF for a repair in the requested locale.
// Archiving to object storage is best-effort and never fails the
// download.
func (uc *GenerateQuote) Execute(
	ctx context.Context,
	repairID string,
	locale i18n.Locale,
) (fileName string, pdf []byte, err error) {

	r, err := uc.repo.GetRepair(ctx, repairID)
	if err != nil {
		return "", nil, err
	}

	doc := quote.BuildDocument(*r, locale)
	pdf, err = uc.renderer.Render(doc)
	if err != nil {
		return "", nil, err
	}

	if err := uc.archiver.Put(ctx, r.ID, doc.FileName, pdf); err != nil {
		uc.log.WithError(err).WithField("repair_id", r.ID).Warn("quote archive failed")
	}

	return doc.FileName, pdf, nil
}
