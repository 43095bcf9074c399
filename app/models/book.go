package models

type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	ImageURL string `gorm:"size:1024" json:"image_url"`
	Summary  string `json:"summary"`
}
