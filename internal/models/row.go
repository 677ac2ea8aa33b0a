package models

import "time"

// Row is a row of numbers the user played for a draw date.
type Row struct {
	ID         int64        `json:"id"`
	RowDate    time.Time    `json:"row_date"`
	Numbers    [RowSize]int `json:"numbers"`
	WeekNumber int          `json:"week_number"`
	CreatedAt  time.Time    `json:"created_at"`
}

// RowComparison is the outcome of checking one row against the winning draw.
type RowComparison struct {
	Row                Row   `json:"row"`
	Draw               Draw  `json:"draw"`
	MatchedNumbers     []int `json:"matched_numbers"`
	MatchedExtraNumber *int  `json:"matched_extra_number"`
	MatchCount         int   `json:"match_count"`
}

type RowFilter struct {
	Date   *time.Time
	Limit  int
	Offset int
}
