package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"whatsapp-reviews/internal/domains/conversation/model"
	"whatsapp-reviews/internal/domains/conversation/repository"
	reviewModel "whatsapp-reviews/internal/domains/review/model"
	reviewService "whatsapp-reviews/internal/domains/review/service"
	"whatsapp-reviews/internal/shared/utils"
)

type conversationService struct {
	states  repository.StateStore
	reviews reviewService.ServiceInterface
}

func NewConversationService(
	states repository.StateStore,
	reviews reviewService.ServiceInterface,
) ServiceInterface {
	return &conversationService{
		states:  states,
		reviews: reviews,
	}
}

// HandleMessage walks AWAIT_PRODUCT -> AWAIT_NAME -> AWAIT_REVIEW and stores
// the review on the last step. "cancel" resets the conversation at any point.
func (s *conversationService) HandleMessage(
	ctx context.Context,
	msg model.IncomingMessage,
) (model.Reply, error) {
	contact := utils.NormalizeContact(msg.From)
	if contact == "" {
		return model.Reply{}, model.ErrMissingSender
	}
	body := utils.SanitizeText(msg.Body)

	if err := s.states.CleanupExpired(ctx); err != nil {
		log.Warn().Err(err).Msg("conversation cleanup failed")
	}

	if strings.EqualFold(body, model.CancelKeyword) {
		if err := s.states.Clear(ctx, contact); err != nil {
			return model.Reply{}, err
		}
		return ok(model.MsgCancelled), nil
	}

	state, err := s.states.Get(ctx, contact)
	if err != nil {
		if !errors.Is(err, model.ErrStateNotFound) {
			return model.Reply{}, err
		}
		if err := s.states.Set(ctx, contact, &model.State{Step: model.StepAwaitProduct}); err != nil {
			return model.Reply{}, err
		}
		return ok(model.MsgAskProduct), nil
	}

	switch state.Step {
	case model.StepAwaitProduct:
		return s.onProduct(ctx, contact, body)
	case model.StepAwaitName:
		return s.onName(ctx, contact, state, body)
	case model.StepAwaitReview:
		return s.onReview(ctx, contact, state, body)
	}

	log.Warn().Str("contact", contact).Str("step", string(state.Step)).Msg("unknown conversation step")
	if err := s.states.Clear(ctx, contact); err != nil {
		return model.Reply{}, err
	}
	return ok(model.MsgUnknownState), nil
}

func (s *conversationService) onProduct(ctx context.Context, contact, body string) (model.Reply, error) {
	if body == "" {
		return ok(model.MsgNeedProduct), nil
	}

	next := &model.State{Step: model.StepAwaitName, ProductName: body}
	if err := s.states.Set(ctx, contact, next); err != nil {
		return model.Reply{}, err
	}
	return ok(model.MsgAskName), nil
}

func (s *conversationService) onName(ctx context.Context, contact string, state *model.State, body string) (model.Reply, error) {
	if body == "" {
		return ok(model.MsgNeedName), nil
	}

	next := &model.State{
		Step:        model.StepAwaitReview,
		ProductName: state.ProductName,
		UserName:    body,
	}
	if err := s.states.Set(ctx, contact, next); err != nil {
		return model.Reply{}, err
	}
	return ok(model.MsgAskReview(state.ProductName)), nil
}

func (s *conversationService) onReview(ctx context.Context, contact string, state *model.State, body string) (model.Reply, error) {
	if body == "" {
		return ok(model.MsgNeedReview), nil
	}

	_, err := s.reviews.RecordReview(ctx, reviewModel.CreateReviewRequest{
		ContactNumber: contact,
		UserName:      state.UserName,
		ProductName:   state.ProductName,
		ProductReview: body,
	})

	var reviewErr *reviewModel.ReviewError
	switch {
	case err == nil:
	case errors.Is(err, reviewModel.ErrInvalidReview) && errors.As(err, &reviewErr):
		// State is kept so the contact can send a corrected review
		return ok(model.MsgValidation(reviewErr.Message)), nil
	case errors.Is(err, reviewModel.ErrDuplicate):
		if err := s.states.Clear(ctx, contact); err != nil {
			return model.Reply{}, err
		}
		return ok(model.MsgDuplicate), nil
	default:
		log.Error().Err(err).Str("contact", contact).Msg("failed to save review")
		return model.Reply{StatusCode: http.StatusInternalServerError, Text: model.MsgSaveFailed}, nil
	}

	if err := s.states.Clear(ctx, contact); err != nil {
		return model.Reply{}, fmt.Errorf("review saved but state not cleared: %w", err)
	}
	return ok(model.MsgRecorded(state.UserName, state.ProductName)), nil
}

func ok(text string) model.Reply {
	return model.Reply{StatusCode: http.StatusOK, Text: text}
}
