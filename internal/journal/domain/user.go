package domain

import "fmt"

// User owns journal entries. Users are provisioned lazily on their first
// log submission; there is no signup flow.
type User struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name  string `json:"name" gorm:"size:100;not null"`
	Email string `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Logs  []Log  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// PlaceholderUser is the record auto-provisioned for an unseen user id
func PlaceholderUser(id int64) *User {
	return &User{
		ID:    id,
		Name:  fmt.Sprintf("User %d", id),
		Email: fmt.Sprintf("user%d@example.com", id),
	}
}
