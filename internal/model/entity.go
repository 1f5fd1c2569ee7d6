package model

import (
	"time"

	"github.com/lib/pq"
)

type Member struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Nickname   string    `gorm:"size:100" json:"nickname"`
	Role       string    `gorm:"size:100;default:Member" json:"role"`
	JoinedDate string    `gorm:"type:date" json:"joined_date"`
	AvatarURL  string    `json:"avatar_url"`
	Bio        string    `json:"bio"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

type Memory struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"not null" json:"description"`
	Emoji        string    `gorm:"size:10;not null" json:"emoji"`
	Gradient     string    `gorm:"size:100;not null" json:"gradient"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Photo struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `json:"description"`
	Date        string         `gorm:"type:date;not null" json:"date"`
	Location    string         `gorm:"size:255" json:"location"`
	UploadedBy  string         `gorm:"size:100;not null" json:"uploaded_by"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL    string         `gorm:"not null" json:"image_url"`
	Approved    bool           `gorm:"default:false" json:"approved"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Song struct {
	ID           int            `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Artist       string         `gorm:"size:255;not null" json:"artist"`
	YouTubeURL   string         `gorm:"column:youtube_url;not null" json:"youtube_url"`
	YouTubeID    string         `gorm:"column:youtube_id;size:50;not null" json:"youtube_id"`
	Duration     string         `gorm:"size:20" json:"duration"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Description  string         `json:"description"`
	AddedBy      string         `gorm:"size:100;not null" json:"added_by"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	Mood         string         `gorm:"size:50" json:"mood"`
	Lyrics       string         `json:"lyrics"`
	Approved     bool           `gorm:"default:false" json:"approved"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (Member) TableName() string { return "members" }
func (Memory) TableName() string { return "memories" }
func (Photo) TableName() string  { return "photos" }
func (Song) TableName() string   { return "songs" }
