package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidState      = errors.New("invalid state")
	ErrNotCompleted      = errors.New("not completed")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrNoSpinsAvailable  = errors.New("no spins available")
	ErrNoEnergy          = errors.New("no energy")
	ErrCooldownActive    = errors.New("cooldown active")
)
