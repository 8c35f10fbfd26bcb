package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/et-services/quoterelay/internal/api/dto/common"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/mailer"
	"github.com/et-services/quoterelay/internal/quote"
	"github.com/et-services/quoterelay/internal/service"
	"github.com/et-services/quoterelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// QuoteSubmitter relays one decoded submission.
type QuoteSubmitter interface {
	Submit(ctx context.Context, sub *quote.Submission) (service.Result, error)
	ProviderName() string
}

type QuoteHandler struct {
	quotes QuoteSubmitter
	logger *logging.Logger
}

func NewQuoteHandler(quotes QuoteSubmitter, logger *logging.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		logger: logger,
	}
}

// Submit handles a quote request from either website form. It is routed
// for every method so that non-POST requests get a JSON 405.
func (h *QuoteHandler) Submit(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.MsgMethodNotAllowed))
		return
	}

	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			utils.HandleError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
			return
		}
	}

	submission, err := quote.Decode(body)
	if err != nil {
		utils.HandleError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
		return
	}

	result, err := h.quotes.Submit(c.Request.Context(), submission)
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		utils.HandleError(c, h.logger, err, http.StatusInternalServerError, common.MsgNotConfigured)
		return
	case errors.Is(err, mailer.ErrSendFailed):
		utils.HandleError(c, h.logger, err, http.StatusInternalServerError, common.DeliveryFailedMessage(h.quotes.ProviderName()))
		return
	case err != nil:
		utils.HandleError(c, h.logger, err, http.StatusInternalServerError, common.MsgServerError)
		return
	}

	if result.Spam {
		utils.HandleSpam(c)
		return
	}

	utils.HandleSuccess(c)
}
