package domain

import "gorm.io/gorm"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	// non-nil only while the account is inactive
	ActivationToken *string `json:"-"`
	Inactive        bool    `gorm:"not null;default:true" json:"inactive"`
	gorm.Model
}
