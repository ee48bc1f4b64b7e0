package domain

// Scope filters ratings and tags to a professor and optionally one of
// their courses. A nil CourseID means professor-level: for ratings that
// is every rating of the professor, for tags only the rows with no
// course attached. The caller is trusted to pair a course with its
// owning professor.
type Scope struct {
	ProfessorID int
	CourseID    *int
}

func ProfessorScope(professorID int) Scope {
	return Scope{ProfessorID: professorID}
}

func CourseScope(professorID, courseID int) Scope {
	return Scope{ProfessorID: professorID, CourseID: &courseID}
}
