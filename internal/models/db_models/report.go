package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubmissionType string

const (
	SubmissionManualEntry SubmissionType = "MANUAL_ENTRY"
	SubmissionFileUpload  SubmissionType = "FILE_UPLOAD"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

const ReportStatusCompleted = "COMPLETED"

// Report is written exactly once per accepted analysis and never mutated.
// Rejected submissions produce no row at all.
type Report struct {
	BaseModel
	UserID          string         `gorm:"index;not null"`
	MachineID       uuid.UUID      `gorm:"index;not null"`
	Type            SubmissionType `gorm:"type:varchar(16)"`
	ManualInputText string
	Status          string    `gorm:"type:varchar(16)"`
	HealthScore     int       // 0-100
	RiskLevel       RiskLevel `gorm:"type:varchar(16)"`
	Summary         string
	Recommendations datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	RawAIResponse   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CostInCredits   int

	User    User    `gorm:"foreignKey:UserID"`
	Machine Machine `gorm:"foreignKey:MachineID"`
}
