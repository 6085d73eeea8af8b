package model

import "fmt"

const CancelKeyword = "cancel"

// Replies sent back to the contact
const (
	MsgCancelled     = "Conversation cancelled. Send any message to start again."
	MsgAskProduct    = "Which product is this review for?"
	MsgNeedProduct   = "Please send the product name."
	MsgAskName       = "What's your name?"
	MsgNeedName      = "Please send your name."
	MsgNeedReview    = "Please send your review text."
	MsgDuplicate     = "Duplicate review detected — we've already recorded this. Thank you."
	MsgSaveFailed    = "Failed to save your review. Please try again later."
	MsgUnknownState  = "Sorry, something went wrong. Send any message to start again."
	MsgMissingSender = "Missing 'From' in request"
)

func MsgAskReview(product string) string {
	return fmt.Sprintf("Please send your review for %s.", product)
}

func MsgValidation(reason string) string {
	return fmt.Sprintf("Validation error: %s", reason)
}

func MsgRecorded(name, product string) string {
	return fmt.Sprintf("Thanks %s — your review for %s has been recorded.", name, product)
}
