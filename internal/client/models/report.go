package models

import "time"

// ReportInput is the body of a single monthly report submission.
type ReportInput struct {
	NGOID           string  `json:"ngo_id"`
	Month           string  `json:"month"`
	PeopleHelped    int     `json:"people_helped"`
	EventsConducted int     `json:"events_conducted"`
	FundsUtilized   float64 `json:"funds_utilized"`
}

// Report is a stored monthly report as returned by the API.
type Report struct {
	ID              int64     `json:"id"`
	NGOID           string    `json:"ngo_id"`
	Month           string    `json:"month"`
	PeopleHelped    int       `json:"people_helped"`
	EventsConducted int       `json:"events_conducted"`
	FundsUtilized   Amount    `json:"funds_utilized"`
	CreatedAt       time.Time `json:"created_at"`
}

// DashboardData holds the aggregates of one month and its reports, ordered
// as returned by the server.
type DashboardData struct {
	Month                string   `json:"month"`
	TotalNGOsReporting   int      `json:"total_ngos_reporting"`
	TotalPeopleHelped    int64    `json:"total_people_helped"`
	TotalEventsConducted int64    `json:"total_events_conducted"`
	TotalFundsUtilized   Amount   `json:"total_funds_utilized"`
	Reports              []Report `json:"reports"`
}
