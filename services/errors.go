package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed        = errors.New("validation failed")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrInvalidRound            = errors.New("round must be between 1 and 3")
	ErrInvalidPairingMode      = errors.New("pairing mode is not allowed for this round")
	ErrRoundNotReady           = errors.New("previous round is not completed")
	ErrRoundAlreadyGenerated   = errors.New("round already generated")
	ErrRoundHasResults         = errors.New("round already has completed matches")
	ErrRoundLocked             = errors.New("only the current round can be regenerated")
	ErrFinalRoundNotCompleted  = errors.New("final round is not completed")
	ErrTournamentNotActive     = errors.New("tournament is not active")
	ErrTournamentNotDraft      = errors.New("tournament can only be changed while in draft")
	ErrTournamentAlreadyActive = errors.New("another tournament is already active")
	ErrTournamentFinalized     = errors.New("final ranking already applied")
	ErrGroupOverCapacity       = errors.New("group has more active players than the tournament allows")
	ErrUnsupportedGroupSize    = errors.New("tournament group size is not supported by round generation")
	ErrStorageDisabled         = errors.New("object storage is not configured")

	// Ошибки конфликтов
	ErrPlayerNameConflict      = errors.New("player name is already in use")
	ErrPlayerInUse             = errors.New("player has matches and cannot be deleted")
	ErrTournamentNameConflict  = errors.New("tournament name already exists")
	ErrSpecialTypeNameConflict = errors.New("special type name already exists")

	ErrAuthenticationFailed = errors.New("authentication failed")

	// Ошибки, специфичные для сущностей
	ErrPlayerNotFound      = errors.New("player not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrSpecialTypeNotFound = errors.New("special type not found")
)

// ValidationError собирает сообщения по полям (или по матчам для ручных пар).
type ValidationError struct {
	Fields map[string]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// orNil позволяет писать `return v.orNil()` без typed-nil ловушки.
func (e *ValidationError) orNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
