package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Machine struct {
	BaseModel
	UserID         string `gorm:"index;not null"`
	Name           string `gorm:"not null"`
	Type           string
	ModelNumber    string
	InstallDate    *time.Time
	Specifications datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User    User     `gorm:"foreignKey:UserID"`
	Reports []Report `gorm:"foreignKey:MachineID"`
}
