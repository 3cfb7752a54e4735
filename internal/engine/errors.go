package engine

import (
	"errors"

	"github.com/tartampluch/go-exact-age/internal/config"
)

var (
	// ErrInvalidRange reports a birth instant after the reference instant.
	ErrInvalidRange = errors.New(config.ErrInvalidRange)

	// ErrConfiguration reports a lookup table missing a key. It is a
	// table-construction bug, never a runtime condition.
	ErrConfiguration = errors.New(config.ErrConfiguration)

	// ErrNoBirthDate reports a vCard stream without any usable BDAY.
	ErrNoBirthDate = errors.New(config.ErrNoBirthDate)
)
