package models

import "github.com/google/uuid"

// Project is a single portfolio entry. ImagePath, when set, is the public URL
// path of the stored image file, not a filesystem path.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text"`
	ImagePath   *string   `json:"image_path" gorm:"type:text"`
	SourceCode  string    `json:"source_code" gorm:"type:text"`
	LiveDemo    string    `json:"live_demo" gorm:"type:text"`
}

// Prepare assigns a fresh id when none has been set yet.
func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}
