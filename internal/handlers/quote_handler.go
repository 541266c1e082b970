package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/httperr"
	"github.com/ivcho02/mechanic-api/internal/i18n"
	repairuc "github.com/ivcho02/mechanic-api/internal/usecase/repair"
)

type QuoteHandler struct {
	generate *repairuc.GenerateQuote
	log      *logrus.Logger
}

func NewQuoteHandler(generate *repairuc.GenerateQuote, log *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{generate: generate, log: log}
}

// Download streams the quote PDF for a repair. ?lang picks the document
// language, defaulting to Bulgarian like the rest of the app.
func (h *QuoteHandler) Download(c *gin.Context) {
	locale := i18n.Pick(c.Query("lang"))

	fileName, pdf, err := h.generate.Execute(c.Request.Context(), c.Param("id"), locale)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "repair_not_found", "repair not found")
			return
		}
		h.log.WithError(err).Error("quote generation failed")
		httperr.Internal(c, "failed_to_generate_quote", "could not generate quote")
		return
	}

	// RFC 5987 encoding keeps the Cyrillic file name intact.
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(fileName)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
