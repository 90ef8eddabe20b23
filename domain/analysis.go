package domain

type AnalysisType string

const (
	AnalysisSkin        AnalysisType = "skin"
	AnalysisFace        AnalysisType = "face"
	AnalysisBody        AnalysisType = "body"
	AnalysisPersonality AnalysisType = "personality"
)

// AnalysisPayload is a tagged union: Type selects which one of the optional
// variants must be set. The others must be nil.
type AnalysisPayload struct {
	Type        AnalysisType         `json:"type" validate:"required,oneof=skin face body personality"`
	Skin        *SkinAnalysis        `json:"skin,omitempty"`
	Face        *FaceAnalysis        `json:"face,omitempty"`
	Body        *BodyAnalysis        `json:"body,omitempty"`
	Personality *PersonalityAnalysis `json:"personality,omitempty"`
}

type SkinAnalysis struct {
	Tone      string `json:"tone" validate:"required,oneof=fair light medium tan deep"`
	Undertone string `json:"undertone" validate:"required,oneof=warm cool neutral"`
}

type FaceAnalysis struct {
	Shape      string  `json:"shape" validate:"required,oneof=oval round square heart oblong diamond"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// BodyAnalysis carries the manual measurements and, when the photo pipeline
// produced one, its classification.
type BodyAnalysis struct {
	Gender       string           `json:"gender"`
	Unit         string           `json:"unit"`
	Measurements map[string]any   `json:"measurements"`
	Photo        *PhotoBodyResult `json:"photo,omitempty"`
}

type PhotoBodyResult struct {
	Shape      string  `json:"shape" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

type PersonalityAnalysis struct {
	Answers []int `json:"answers" validate:"required,min=1,max=20,dive,min=1,max=5"`
}
