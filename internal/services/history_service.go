package services

import (
	"math"
	"strconv"
	"time"

	"github.com/terraincognita07/musclemap/internal/models"
)

const historyDateLayout = "2006-01-02"

var HistoryCSVHeaders = []string{
	"Week",
	"Date",
	"Start weight (kg)",
	"Current weight (kg)",
	"Change (kg)",
	"Diet adherence",
	"Strength",
	"Energy",
	"Sleep",
	"Outcome",
	"Notes",
}

type HistoryProfileReader interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
}

type HistoryLogReader interface {
	ListByProfile(profileID uint) ([]models.ProgressLog, error)
}

type HistoryService struct {
	profiles HistoryProfileReader
	logs     HistoryLogReader
}

type HistorySummary struct {
	WeeksLogged         int     `json:"weeks_logged"`
	StartingWeight      float64 `json:"starting_weight"`
	LatestWeight        float64 `json:"latest_weight"`
	TotalChange         float64 `json:"total_change"`
	AverageWeeklyChange float64 `json:"average_weekly_change"`
}

type HistoryLedger struct {
	StartingWeight float64              `json:"starting_weight"`
	StartedAt      time.Time            `json:"started_at"`
	Entries        []models.ProgressLog `json:"entries"`
	Summary        HistorySummary       `json:"summary"`
}

func NewHistoryService(profiles HistoryProfileReader, logs HistoryLogReader) *HistoryService {
	return &HistoryService{profiles: profiles, logs: logs}
}

func (service *HistoryService) Ledger(userID uint) (HistoryLedger, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return HistoryLedger{}, err
	}
	if !found {
		return HistoryLedger{}, ErrProfileNotFound
	}

	entries, err := service.logs.ListByProfile(profile.ID)
	if err != nil {
		return HistoryLedger{}, err
	}
	if entries == nil {
		entries = []models.ProgressLog{}
	}

	return HistoryLedger{
		StartingWeight: profile.StartingWeight,
		StartedAt:      profile.CreatedAt,
		Entries:        entries,
		Summary:        SummarizeHistory(profile.StartingWeight, entries),
	}, nil
}

// SummarizeHistory expects entries in insertion order.
func SummarizeHistory(startingWeight float64, entries []models.ProgressLog) HistorySummary {
	summary := HistorySummary{
		WeeksLogged:    len(entries),
		StartingWeight: startingWeight,
		LatestWeight:   startingWeight,
	}
	if len(entries) == 0 {
		return summary
	}

	summary.LatestWeight = entries[len(entries)-1].CurrentWeight
	summary.TotalChange = roundWeightChange(summary.LatestWeight - startingWeight)
	summary.AverageWeeklyChange = math.Round(summary.TotalChange/float64(len(entries))*100) / 100
	return summary
}

// BuildCSVRecords returns the header row followed by the entries dated inside
// historyRange. The range filters this export view only; Ledger stays unfiltered.
func (service *HistoryService) BuildCSVRecords(userID uint, historyRange HistoryRange, location *time.Location) ([][]string, error) {
	ledger, err := service.Ledger(userID)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(ledger.Entries)+1)
	records = append(records, HistoryCSVHeaders)
	for _, entry := range ledger.Entries {
		if !historyRange.Contains(entry.Date, location) {
			continue
		}
		records = append(records, []string{
			strconv.Itoa(entry.WeekNumber),
			DateAtLocation(entry.Date, location).Format(historyDateLayout),
			formatWeight(entry.StartWeightOfWeek),
			formatWeight(entry.CurrentWeight),
			formatWeight(roundWeightChange(entry.WeightChange())),
			string(entry.DietAdherence),
			string(entry.StrengthProgress),
			string(entry.EnergyLevels),
			string(entry.SleepQuality),
			entry.Outcome,
			entry.Notes,
		})
	}
	return records, nil
}

func formatWeight(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
