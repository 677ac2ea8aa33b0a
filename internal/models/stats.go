package models

import "time"

// NumberStat holds the recurrence statistics derived for a single number.
// Optional fields are nil when the history is too short to derive them.
type NumberStat struct {
	Number         int        `json:"number"`
	Count          int        `json:"count"`
	GapsDays       []float64  `json:"gaps_days"`
	AverageGapDays *float64   `json:"average_gap_days"`
	LastSeen       *time.Time `json:"last_seen"`
	PredictedNext  *time.Time `json:"predicted_next"`
}

type FrequencyStat struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// PredictionResult answers a tolerance query for a target date.
type PredictionResult struct {
	TargetDate    time.Time `json:"target_date"`
	ToleranceDays float64   `json:"tolerance_days"`
	Numbers       []int     `json:"numbers"`
	Candidates    int       `json:"candidates"`
}
