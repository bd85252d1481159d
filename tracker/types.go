// Package tracker holds the persistence-layer entities of the training
// tracker. They are the source side of entity-to-view mapping.
package tracker

import (
	"time"
)

// Department groups colleagues under a common training budget.
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CostCode  string    `json:"cost_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Colleague represents an employee participating in training.
type Colleague struct {
	ID           uint       `gorm:"primaryKey"  json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"` // omitted in JSON
	DepartmentID uint       `json:"department_id"`
	HiredAt      time.Time  `json:"hired_at"`
	LeftAt       *time.Time `json:"left_at,omitempty"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department"`
	Goals      []Goal     `gorm:"foreignKey:ColleagueID"  json:"goals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Goal is a development objective a colleague works toward.
type Goal struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ColleagueID uint       `json:"colleague_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      GoalStatus `json:"status"`
	DueAt       *time.Time `json:"due_at,omitempty"`

	// Relationships
	Colleague Colleague      `gorm:"foreignKey:ColleagueID" json:"-"`
	Plans     []TrainingPlan `gorm:"foreignKey:GoalID"      json:"plans,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrainingPlan schedules the sessions that work toward a goal.
type TrainingPlan struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GoalID   uint   `json:"goal_id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Budget   int64  `json:"budget"` // in cents (minor currency unit)

	// Relationships
	Sessions []TrainingSession `gorm:"foreignKey:PlanID" json:"sessions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrainingSession is a single scheduled occurrence within a plan.
type TrainingSession struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	PlanID    uint          `json:"plan_id"`
	Topic     string        `json:"topic"`
	Location  string        `json:"location"`
	StartsAt  time.Time     `json:"starts_at"`
	Duration  time.Duration `json:"duration"`
	Completed bool          `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalStatus is a custom type for type-safe status handling.
type GoalStatus string

const (
	GoalDraft     GoalStatus = "DRAFT"
	GoalActive    GoalStatus = "ACTIVE"
	GoalAchieved  GoalStatus = "ACHIEVED"
	GoalAbandoned GoalStatus = "ABANDONED"
)
