package db_models

type UserPlan string

const (
	PlanFree     UserPlan = "FREE"
	PlanStandard UserPlan = "STANDARD"
	PlanPro      UserPlan = "PRO"
)

// User is keyed by the identity provider's subject id, not a local uuid.
// Rows are provisioned lazily on the first authenticated request.
type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"unique"`
	FirstName string
	LastName  string
	ImageURL  string
	Credits   int      `gorm:"not null;default:3"`
	Plan      UserPlan `gorm:"type:varchar(16);default:'FREE'"`
	Role      string   `gorm:"type:varchar(16);default:'USER'"`
	CreatedAt int64    `gorm:"autoCreateTime"`
	UpdatedAt int64    `gorm:"autoUpdateTime"`

	Machines []Machine `gorm:"foreignKey:UserID"`
	Reports  []Report  `gorm:"foreignKey:UserID"`
}

// Unlimited reports whether the plan is exempt from credit metering.
func (u *User) Unlimited() bool {
	return u.Plan == PlanPro
}
