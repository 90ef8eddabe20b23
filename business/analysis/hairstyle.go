package analysis

import "auraSync/domain"

type Hairstyle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var femaleHairstyles = map[string][]Hairstyle{
	"oval": {
		{Name: "Long layers", Description: "Soft layers that keep the balanced proportions visible."},
		{Name: "Blunt bob", Description: "A chin-length cut that frames the jaw."},
	},
	"round": {
		{Name: "Long side part", Description: "Vertical lines that lengthen the face."},
		{Name: "Textured lob", Description: "Volume at the crown with length past the chin."},
	},
	"square": {
		{Name: "Soft waves", Description: "Curves that soften a strong jawline."},
		{Name: "Side-swept bangs", Description: "Angled fringe that breaks up the forehead width."},
	},
	"heart": {
		{Name: "Chin-length bob", Description: "Adds width at the jaw to balance the forehead."},
		{Name: "Curtain bangs", Description: "Narrows the forehead visually."},
	},
	"oblong": {
		{Name: "Shoulder-length curls", Description: "Width at the sides shortens the face."},
		{Name: "Full fringe", Description: "Reduces visible forehead height."},
	},
	"diamond": {
		{Name: "Tucked pixie", Description: "Shows off the cheekbones with soft edges."},
		{Name: "Deep side part", Description: "Adds width at forehead and chin."},
	},
}

var maleHairstyles = map[string][]Hairstyle{
	"oval": {
		{Name: "Classic taper", Description: "Short sides with length on top."},
		{Name: "Quiff", Description: "Lifted front that keeps proportions balanced."},
	},
	"round": {
		{Name: "Pompadour", Description: "Height on top lengthens the face."},
		{Name: "Faux hawk", Description: "Tight sides with a vertical line through the center."},
	},
	"square": {
		{Name: "Buzz cut", Description: "Highlights a strong jaw."},
		{Name: "Side part", Description: "Clean, structured look that suits angles."},
	},
	"heart": {
		{Name: "Textured fringe", Description: "Covers part of the forehead."},
		{Name: "Medium swept back", Description: "Keeps volume off the temples."},
	},
	"oblong": {
		{Name: "Crew cut", Description: "Low height on top avoids lengthening the face."},
		{Name: "Side-swept fringe", Description: "Breaks up the face length."},
	},
	"diamond": {
		{Name: "Messy fringe", Description: "Adds width at the forehead."},
		{Name: "Longer textured top", Description: "Softens prominent cheekbones."},
	},
}

// SuggestHairstyles returns styles for a face shape. Unknown shapes get none.
func SuggestHairstyles(faceShape string, gender domain.Gender) []Hairstyle {
	var table map[string][]Hairstyle
	switch gender {
	case domain.GenderMale:
		table = maleHairstyles
	default:
		table = femaleHairstyles
	}

	styles := table[faceShape]
	out := make([]Hairstyle, len(styles))
	copy(out, styles)
	return out
}
