// Package views holds the view models the web layer renders. They are the
// target side of entity-to-view mapping: same field names as the tracker
// entities where values carry over, different shapes where they do not.
package views

import (
	"time"
)

// DepartmentView is the flat department representation.
type DepartmentView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ColleagueView omits credentials and audit columns and carries a display
// name the mapper cannot derive by name matching alone.
type ColleagueView struct {
	ID          uint           `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	DisplayName string         `json:"display_name"` // filled by an override
	Department  DepartmentView `json:"department"`
	Goals       []GoalView     `json:"goals,omitempty"`
}

// GoalView flattens the goal status to a plain string.
type GoalView struct {
	ID     uint               `json:"id"`
	Title  string             `json:"title"`
	Status string             `json:"status"`
	DueAt  *time.Time         `json:"due_at,omitempty"`
	Plans  []TrainingPlanView `json:"plans,omitempty"`
}

// TrainingPlanView lists a plan with its schedule.
type TrainingPlanView struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	Provider string        `json:"provider"`
	Budget   int64         `json:"budget"` // in cents, as stored
	Sessions []SessionView `json:"sessions,omitempty"`
}

// SessionView is the schedule row for a single session.
type SessionView struct {
	ID       uint          `json:"id"`
	Topic    string        `json:"topic"`
	Location string        `json:"location"`
	StartsAt time.Time     `json:"starts_at"`
	Duration time.Duration `json:"duration"`
}
