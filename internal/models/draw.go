package models

import "time"

// DrawSize is the number of slots in a jackpot draw. The last slot holds the
// extra number.
const DrawSize = 8

// RowSize is the number of numbers on a user-submitted row.
const RowSize = 7

// Draw is a jackpot draw: eight numbers drawn on a calendar date.
type Draw struct {
	ID         int64         `json:"id"`
	DrawDate   time.Time     `json:"draw_date"`
	Numbers    [DrawSize]int `json:"numbers"`
	WeekNumber int           `json:"week_number"`
	CreatedAt  time.Time     `json:"created_at"`
}

// MainNumbers returns slots 1-7.
func (d Draw) MainNumbers() []int {
	out := make([]int, RowSize)
	copy(out, d.Numbers[:RowSize])
	return out
}

// ExtraNumber returns slot 8.
func (d Draw) ExtraNumber() int {
	return d.Numbers[DrawSize-1]
}

type DrawFilter struct {
	From       *time.Time
	To         *time.Time
	WeekNumber int
	Limit      int
	Offset     int
	OrderDir   string
}
