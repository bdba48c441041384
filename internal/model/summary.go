package model

import (
	"time"
)

type ChatSummaryList []ChatSummary

type ChatSummary struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	LastMessage string    `db:"last_message" json:"lastMessage"`
	Timestamp   time.Time `db:"updated_at" json:"timestamp"`
}

type ScheduleItem struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}
