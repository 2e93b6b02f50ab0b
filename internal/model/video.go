package model

import "time"

type Video struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	YoutubeURL string    `gorm:"not null" json:"youtube_url"`
	VideoID    string    `gorm:"not null;uniqueIndex;size:11" json:"video_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
