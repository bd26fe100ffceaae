package model

// UserModel rows are seeded at startup; users are never created or
// deleted through the API, so IDs are assigned by the seeder.
type UserModel struct {
	ID       string `gorm:"type:varchar(36);primary_key" json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
