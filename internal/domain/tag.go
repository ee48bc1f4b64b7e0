package domain

// Tag rows carry an accumulated weight, not a per-event count. Several
// rows may share the same tag text within a scope; ranking sums them.
type Tag struct {
	ID          int    `db:"id" json:"id"`
	ProfessorID int    `db:"professor_id" json:"professor_id"`
	CourseID    *int   `db:"course_id" json:"course_id"`
	Tag         string `db:"tag" json:"tag"`
	Count       int    `db:"count" json:"count"`
}

// TagCount is one scoped (text, weight) pair handed to the ranker.
type TagCount struct {
	Tag   string `db:"tag" json:"tag"`
	Count int    `db:"count" json:"count"`
}
