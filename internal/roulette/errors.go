package roulette

import "errors"

// ErrInvalidBet is returned when a bet would leave the table in an invalid
// state: over its limit or under its minimum.
var ErrInvalidBet = errors.New("invalid bet")
