package ranking

import (
	"strings"
	"time"

	"landingCards/domain"
)

// internal tag for the fixed-duration expiry tied to active order completion
const expireActiveOrderWindow = "active_order_window"

// computeExpiry maps a card's expire condition to an absolute timestamp.
// Every day boundary is computed from evalTime (the request's evaluation
// instant), never from the process clock. Unrecognized tags leave the
// timestamp at evalTime, which expires the card immediately.
func computeExpiry(expireCondition, daypart string, evalTime time.Time) time.Time {
	switch normalizeExpireTag(expireCondition) {
	case domain.ExpireEndOfDaypart:
		return endOfDaypart(evalTime, daypart)
	case domain.ExpireEndOfDay:
		return endOfDay(evalTime)
	case domain.ExpireEndOfNextDay:
		return endOfDay(evalTime.Add(24 * time.Hour))
	case expireActiveOrderWindow:
		return evalTime.Add(24 * time.Hour)
	}
	return evalTime
}

// normalizeExpireTag folds the legacy compound condition strings onto the
// recognized tag set.
func normalizeExpireTag(s string) string {
	switch {
	case strings.Contains(s, domain.ExpireEndOfNextDay):
		return domain.ExpireEndOfNextDay
	case strings.Contains(s, domain.FactHasActiveOrder):
		return expireActiveOrderWindow
	}
	return strings.TrimSpace(s)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
}

// endOfDaypart returns the fixed hour boundary closing the request's
// daypart: night ends 06:00, morning 12:00, afternoon 18:00, and evening
// runs to the end of the day.
func endOfDaypart(t time.Time, daypart string) time.Time {
	y, m, d := t.Date()
	switch daypart {
	case domain.DaypartNight:
		return time.Date(y, m, d, 6, 0, 0, 0, t.Location())
	case domain.DaypartMorning:
		return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
	case domain.DaypartAfternoon:
		return time.Date(y, m, d, 18, 0, 0, 0, t.Location())
	}
	return endOfDay(t)
}
