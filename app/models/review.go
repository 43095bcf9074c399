package models

import "time"

type Review struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	BookID    uint `gorm:"not null;index"`
	Rating    int  `gorm:"not null"`
	Comment   string
	User      User `gorm:"constraint:OnDelete:RESTRICT"`
	Book      Book `gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
