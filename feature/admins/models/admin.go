package models

// Admin is a panel login. Password holds the hex digest of Salt followed by
// the plaintext password.
type Admin struct {
	Username string `gorm:"column:username;primaryKey;size:191" json:"username"`
	Password string `gorm:"column:password;size:64;not null" json:"-"`
	Salt     []byte `gorm:"column:salt;not null" json:"-"`
}

// TableName pins the table name.
func (Admin) TableName() string {
	return "admins"
}
