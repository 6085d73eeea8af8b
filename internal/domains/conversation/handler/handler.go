package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/domains/conversation/model"
	"whatsapp-reviews/internal/domains/conversation/service"
	"whatsapp-reviews/internal/shared/response"
)

type WebhookHandler struct {
	conversationService service.ServiceInterface
}

func NewWebhookHandler(conversationService service.ServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		conversationService: conversationService,
	}
}

// Receive handles one inbound Twilio WhatsApp message.
// Twilio posts form-encoded data; the reply body is sent back as plain text.
// POST /whatsapp
func (h *WebhookHandler) Receive(c *gin.Context) {
	var msg model.IncomingMessage
	if err := c.ShouldBind(&msg); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := h.conversationService.HandleMessage(c.Request.Context(), msg)
	if err != nil {
		if errors.Is(err, model.ErrMissingSender) {
			response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeMissingSender, model.MsgMissingSender)
			return
		}

		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("conversation state failure")
		response.ErrorResponse(c, http.StatusInternalServerError, model.ErrCodeStateStore, model.MsgUnknownState)
		return
	}

	c.String(reply.StatusCode, reply.Text)
}
