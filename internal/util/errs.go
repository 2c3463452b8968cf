package util

import (
	"photo-slideshow/internal/logging"
)

// Check logs err at fatal level and exits if err is not nil.
func Check(err error) {
	if err != nil {
		logging.Fatal().Err(err).Msg("fatal error")
	}
}
