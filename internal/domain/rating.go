package domain

type Rating struct {
	ID          int     `db:"id" json:"id"`
	ProfessorID int     `db:"professor_id" json:"professor_id"`
	CourseID    *int    `db:"course_id" json:"course_id"`
	UserID      string  `db:"user_id" json:"user_id"`
	Rating      int     `db:"rating" json:"rating"`
	Review      string  `db:"review" json:"review"`
	CourseType  string  `db:"course_type" json:"course_type"`
	Grade       string  `db:"grade" json:"grade"`
	Email       string  `db:"email" json:"email"`
	Date        string  `db:"date" json:"date"`
	CourseName  *string `db:"course_name" json:"course_name"`
}

// NewRatingRequest is the submission body. The submission date is
// server-assigned; a client-supplied date is ignored.
type NewRatingRequest struct {
	ProfessorID int    `json:"professor_id" validate:"required"`
	CourseID    *int   `json:"course_id"`
	UserID      string `json:"user_id" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Review      string `json:"review"`
	CourseType  string `json:"course_type"`
	Grade       string `json:"grade"`
	Email       string `json:"email" validate:"omitempty,email"`
}
