package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHistoryFromDateInvalid = errors.New("history invalid from date")
	ErrHistoryToDateInvalid   = errors.New("history invalid to date")
	ErrHistoryRangeInvalid    = errors.New("history invalid range")
)

// HistoryRange bounds check-in dates inclusively. A nil bound is open.
type HistoryRange struct {
	From *time.Time
	To   *time.Time
}

func ParseHistoryRange(rawFrom string, rawTo string, location *time.Location) (HistoryRange, error) {
	if location == nil {
		location = time.UTC
	}

	from, err := parseHistoryDate(rawFrom, location)
	if err != nil {
		return HistoryRange{}, ErrHistoryFromDateInvalid
	}
	to, err := parseHistoryDate(rawTo, location)
	if err != nil {
		return HistoryRange{}, ErrHistoryToDateInvalid
	}
	if from != nil && to != nil && to.Before(*from) {
		return HistoryRange{}, ErrHistoryRangeInvalid
	}
	return HistoryRange{From: from, To: to}, nil
}

func parseHistoryDate(raw string, location *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(historyDateLayout, raw, location)
	if err != nil {
		return nil, err
	}
	normalized := DateAtLocation(parsed, location)
	return &normalized, nil
}

// Contains compares calendar days in location.
func (historyRange HistoryRange) Contains(date time.Time, location *time.Location) bool {
	day := DateAtLocation(date, location)
	if historyRange.From != nil && day.Before(DateAtLocation(*historyRange.From, location)) {
		return false
	}
	if historyRange.To != nil && day.After(DateAtLocation(*historyRange.To, location)) {
		return false
	}
	return true
}
