package models

// TutorialVideo is an instructional video shown in the help section
type TutorialVideo struct {
	BaseModel
	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"type:text"`
	VideoURL    string `json:"video_url" gorm:"not null;size:500"`
	Category    string `json:"category" gorm:"size:100;index"`
	SortOrder   int    `json:"sort_order" gorm:"not null"`
	Published   bool   `json:"published" gorm:"not null"`
}
