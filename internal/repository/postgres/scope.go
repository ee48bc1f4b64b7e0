package postgres

import "github.com/likhitatulimilli23/HCI/internal/domain"

// The course filter is applied in exactly one place per relation so the
// professor-level/course-level split stays consistent across the stats,
// ratings and tags queries. prefix qualifies the columns when the query
// joins other tables (e.g. "r.").

// ratingScope returns the WHERE predicate and arguments selecting the
// rating rows of a scope. Without a course filter every rating of the
// professor is in scope.
func ratingScope(sc domain.Scope, prefix string) (string, []any) {
	if sc.CourseID != nil {
		return prefix + "professor_id = $1 AND " + prefix + "course_id = $2",
			[]any{sc.ProfessorID, *sc.CourseID}
	}
	return prefix + "professor_id = $1", []any{sc.ProfessorID}
}

// tagScope returns the WHERE predicate and arguments selecting the tag
// rows of a scope. Tags are strictly either/or: without a course filter
// only professor-level rows (course_id IS NULL) qualify.
func tagScope(sc domain.Scope, prefix string) (string, []any) {
	if sc.CourseID != nil {
		return prefix + "professor_id = $1 AND " + prefix + "course_id = $2",
			[]any{sc.ProfessorID, *sc.CourseID}
	}
	return prefix + "professor_id = $1 AND " + prefix + "course_id IS NULL",
		[]any{sc.ProfessorID}
}
