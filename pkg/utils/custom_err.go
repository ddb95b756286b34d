package utils

import "errors"

var (
	ErrNotFound         = errors.New("entity not found")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
	ErrDatabaseDisabled = errors.New("database not configured")

	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrUnknownStatus     = errors.New("unknown status value")

	ErrAlreadyReverted = errors.New("activity already reverted")
	ErrNoSnapshot      = errors.New("activity has no previous data snapshot")
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	ErrMalformedBackup = errors.New("malformed backup payload")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")

	ErrAINotConfigured        = errors.New("AI provider not configured")
	ErrPoorQualityInput       = errors.New("prompt too vague to plan from")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
	ErrMalformedAIResponse    = errors.New("AI response failed schema validation")
	ErrMailNotConfigured      = errors.New("mail sender not configured")
)
