package services

import (
	"fmt"
	"time"

	"github.com/scrapline/junkshop_backoffice/internal/core/domain"
)

// fixedZoneClock reports the current time in a fixed civil offset with no DST.
// All persisted timestamps flow through this clock so they stay comparable.
type fixedZoneClock struct {
	loc *time.Location
}

// NewFixedZoneClock creates a Clock pinned to the given UTC offset in hours
// (UTC+8 for the Manila-based deployment).
func NewFixedZoneClock(offsetHours int) domain.Clock {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return &fixedZoneClock{loc: time.FixedZone(name, offsetHours*3600)}
}

func (c *fixedZoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}
