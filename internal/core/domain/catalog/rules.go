package catalog

import (
	"errors"
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func checkDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.New("must not be before the start date")
	}
	return nil
}
