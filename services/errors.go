package services

import "errors"

// Shared service errors, mapped to HTTP statuses in the handlers layer.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Arena
	ErrPkNumberNotFound = errors.New("pk number not found")

	// Lottery
	ErrLotteryLocked    = errors.New("lottery is locked until voting is complete")
	ErrNoDrawsRemaining = errors.New("no draws remaining today")
	ErrNoRewards        = errors.New("reward catalog is empty")

	// Shipping / registration intake
	ErrShippingIncomplete  = errors.New("shipping info requires name, phone and address")
	ErrNoWorksSelected     = errors.New("at least one work must be selected")
	ErrUnknownWorkSelected = errors.New("selected work does not exist")
	ErrRegistrationClosed  = errors.New("registration stage has ended")
)
