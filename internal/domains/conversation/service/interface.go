package service

import (
	"context"

	"whatsapp-reviews/internal/domains/conversation/model"
)

// ServiceInterface drives the WhatsApp review conversation
type ServiceInterface interface {
	// HandleMessage advances the sender's conversation by one message
	HandleMessage(ctx context.Context, msg model.IncomingMessage) (model.Reply, error)
}
