package domain

type Professor struct {
	ID         int    `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Department string `db:"department" json:"department"`
	University string `db:"university" json:"university"`
}

// Composite types for API responses

// ProfessorSummary is one row of the listing endpoint: professor fields
// plus the aggregate computed across all of their courses.
type ProfessorSummary struct {
	Professor
	AverageRating   float64 `json:"averageRating"`
	NumberOfRatings int     `json:"numberOfRatings"`
}

// ProfessorDetail is the full profile view. AverageRating carries the
// one-decimal presentation of the same mean the listing returns raw.
type ProfessorDetail struct {
	Professor
	Courses         []Course `json:"courses"`
	AverageRating   string   `json:"averageRating"`
	NumberOfRatings int      `json:"numberOfRatings"`
	TopTags         []string `json:"topTags"`
}
