package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds       = errors.New("coordinate is outside the board")
	ErrCellAlreadyShot   = errors.New("cell has already been shot")
	ErrInvalidShipLength = errors.New("invalid ship length")

	// Placement errors
	ErrPlacementExhausted = errors.New("fleet placement exhausted all attempts")

	// Targeting errors
	ErrShotAlreadyRecorded = errors.New("shot has already been recorded")
	ErrNoShotsRemaining    = errors.New("every cell has already been shot")
	ErrOracleNeedsBoard    = errors.New("oracle difficulty requires the opponent board")
	ErrUnknownDifficulty   = errors.New("unknown difficulty")

	// Match errors
	ErrFleetNotPlaced = errors.New("fleet has not been placed")
	ErrTurnLimit      = errors.New("match exceeded the turn limit")
)
