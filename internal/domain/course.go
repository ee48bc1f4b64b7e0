package domain

type Course struct {
	ID          int    `db:"id" json:"id"`
	ProfessorID int    `db:"professor_id" json:"professor_id"`
	Name        string `db:"name" json:"name"`
}
