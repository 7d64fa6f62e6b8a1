package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

func TestRealClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, New().Now().Location())
}

func TestNowMillis(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("x", 3600))
	assert.Equal(t, at.UnixMilli(), NowMillis(fixedClock(at)))
}
