package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.outfits (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     gender       TEXT NOT NULL,
//     name         TEXT NOT NULL,
//     description  TEXT,
//     image_url    TEXT,
//     price        NUMERIC,
//     rating       NUMERIC,
//     body_shapes  JSONB,
//     position     INT DEFAULT 0,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Outfit struct {
	ID          uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Gender      string                      `gorm:"column:gender;type:text;index;not null" json:"gender"`
	Name        string                      `gorm:"column:name;type:text;not null" json:"name"`
	Description string                      `gorm:"column:description;type:text" json:"description"`
	ImageURL    string                      `gorm:"column:image_url;type:text" json:"image_url"`
	Price       float64                     `gorm:"column:price;type:numeric" json:"price"`
	Rating      float64                     `gorm:"column:rating;type:numeric" json:"rating"`
	BodyShapes  datatypes.JSONSlice[string] `gorm:"column:body_shapes;type:jsonb" json:"body_shapes"`
	Position    int                         `gorm:"column:position;default:0" json:"position"`
	CreatedAt   time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (Outfit) TableName() string {
	return "outfits"
}

func (o Outfit) SuitsBodyShape(shape string) bool {
	for _, s := range o.BodyShapes {
		if s == shape {
			return true
		}
	}
	return false
}

type OutfitPage struct {
	Items      []Outfit `json:"items"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
}
