package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	BodySourcePhoto  = "photo"
	BodySourceManual = "manual"
)

// CREATE TABLE public.body_profiles (
//     id               UUID PRIMARY KEY,
//     user_id          BIGINT NOT NULL UNIQUE,
//     gender           TEXT,
//     body_shape       TEXT,
//     body_source      TEXT,
//     low_confidence   BOOLEAN DEFAULT FALSE,
//     measurements     JSONB,
//     ranking          JSONB,
//     skin_tone        TEXT,
//     undertone        TEXT,
//     face_shape       TEXT,
//     style_archetype  TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW(),
//     updated_at       TIMESTAMPTZ DEFAULT NOW()
// );

type BodyProfile struct {
	ID             uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uint                              `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Gender         string                            `gorm:"column:gender;type:text" json:"gender,omitempty"`
	BodyShape      string                            `gorm:"column:body_shape;type:text" json:"body_shape,omitempty"`
	BodySource     string                            `gorm:"column:body_source;type:text" json:"body_source,omitempty"`
	LowConfidence  bool                              `gorm:"column:low_confidence;default:false" json:"low_confidence"`
	Measurements   datatypes.JSONMap                 `gorm:"column:measurements;type:jsonb" json:"measurements,omitempty"`
	Ranking        datatypes.JSONSlice[ScoredResult] `gorm:"column:ranking;type:jsonb" json:"ranking,omitempty"`
	SkinTone       string                            `gorm:"column:skin_tone;type:text" json:"skin_tone,omitempty"`
	Undertone      string                            `gorm:"column:undertone;type:text" json:"undertone,omitempty"`
	FaceShape      string                            `gorm:"column:face_shape;type:text" json:"face_shape,omitempty"`
	StyleArchetype string                            `gorm:"column:style_archetype;type:text" json:"style_archetype,omitempty"`
	CreatedAt      time.Time                         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time                         `gorm:"column:updated_at" json:"updated_at"`
}

func (BodyProfile) TableName() string {
	return "body_profiles"
}

// CompletedSteps lists the onboarding analyses already stored on the profile.
func (p BodyProfile) CompletedSteps() []AnalysisType {
	steps := make([]AnalysisType, 0, 4)
	if p.SkinTone != "" {
		steps = append(steps, AnalysisSkin)
	}
	if p.FaceShape != "" {
		steps = append(steps, AnalysisFace)
	}
	if p.BodyShape != "" {
		steps = append(steps, AnalysisBody)
	}
	if p.StyleArchetype != "" {
		steps = append(steps, AnalysisPersonality)
	}
	return steps
}
