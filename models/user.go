package models

// User represents an account. The username is the primary key and never
// changes after signup. Password holds the bcrypt hash, never the plaintext.
type User struct {
	Username string `gorm:"primaryKey;size:255" json:"username"`
	Password string `gorm:"size:255" json:"-"`
	Bio      string `gorm:"type:text" json:"bio"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "user"
}
