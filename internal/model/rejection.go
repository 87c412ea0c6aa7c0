package model

import "fmt"

// RejectionReason identifies which rule a submitted word failed
type RejectionReason string

const (
	RejectTooShort      RejectionReason = "too_short"
	RejectSameAsRoot    RejectionReason = "same_as_root"
	RejectAlreadyUsed   RejectionReason = "already_used"
	RejectNotDerivable  RejectionReason = "not_derivable"
	RejectNotRecognized RejectionReason = "not_recognized"
)

// RejectionError is returned when a candidate word fails validation.
// Title and Message are meant for display to the player.
type RejectionError struct {
	Reason  RejectionReason
	Title   string
	Message string
}

// Error implements error
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// Is lets errors.Is(err, ErrRejected) match any rejection
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// NewRejection builds the RejectionError for reason. root is only used by
// the NotDerivable message.
func NewRejection(reason RejectionReason, root string) *RejectionError {
	e := &RejectionError{Reason: reason}
	switch reason {
	case RejectTooShort:
		e.Title = "Word too short"
		e.Message = "Words must be at least four letters long"
	case RejectSameAsRoot:
		e.Title = "Word invalid"
		e.Message = "Your word is the same as the given word"
	case RejectAlreadyUsed:
		e.Title = "Word used already"
		e.Message = "Be more original"
	case RejectNotDerivable:
		e.Title = "Word not possible"
		e.Message = fmt.Sprintf("You can't spell that word from '%s'", root)
	case RejectNotRecognized:
		e.Title = "Word not recognized"
		e.Message = "You can't just make them up, you know!"
	default:
		e.Title = "Word rejected"
		e.Message = string(reason)
	}
	return e
}
