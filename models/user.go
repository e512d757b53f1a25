package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"size:120"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// Profile 对外公开的用户信息
type Profile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Profile 返回公开信息
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name}
}
