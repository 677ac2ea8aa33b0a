package models

type Settings struct {
	ToleranceDays float64 `json:"tolerance_days"`
}
