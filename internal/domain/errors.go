package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrProfileAlreadyExists  = errors.New("profile already exists")
	ErrPreferenceNotFound    = errors.New("preference not found")
	ErrInterestNotFound      = errors.New("interest not found")
	ErrInterestExists        = errors.New("interest already exists")
	ErrInterestResponded     = errors.New("interest already responded")
	ErrNotInterestReceiver   = errors.New("only the receiver can respond")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrViewAlreadyRecorded   = errors.New("profile view already recorded")
	ErrInvalidDecision       = errors.New("invalid interest decision")
	ErrInvalidDirection      = errors.New("direction must be sent or received")
	ErrMissingReceiver       = errors.New("receiver id is required")
	ErrSelfInterest          = errors.New("cannot send interest to yourself")
	ErrMessageTooLong        = errors.New("message is too long")
)
