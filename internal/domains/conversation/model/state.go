package model

import "time"

// Step is where a contact currently is in the review conversation
type Step string

const (
	StepAwaitProduct Step = "AWAIT_PRODUCT"
	StepAwaitName    Step = "AWAIT_NAME"
	StepAwaitReview  Step = "AWAIT_REVIEW"
)

// State is the per-contact progress of one review conversation
type State struct {
	Step        Step      `json:"state"`
	ProductName string    `json:"product_name,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	LastSeen    time.Time `json:"last_ts"`
}

// Expired reports whether the state has been idle for longer than ttl
func (s *State) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.LastSeen) > ttl
}

// IncomingMessage is the part of a Twilio webhook the flow needs
type IncomingMessage struct {
	From string `form:"From"`
	Body string `form:"Body"`
}

// Reply is the plain text answer sent back to Twilio
type Reply struct {
	StatusCode int
	Text       string
}
