package postgres

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

type professorSeed struct {
	Name       string
	Department string
	University string
}

type courseSeed struct {
	ProfessorID int
	Name        string
}

type userSeed struct {
	UserID   string
	Password string
	Email    string
}

type ratingSeed struct {
	ProfessorID int
	CourseID    int
	UserID      string
	Rating      int
	Review      string
	CourseType  string
	Grade       string
	Email       string
	Date        string
}

type tagSeed struct {
	ProfessorID int
	CourseID    *int
	Tag         string
	Count       int
}

var professorSeeds = []professorSeed{
	{"John Doe", "Computer Science", "MIT"},
	{"Jane Smith", "Physics", "Harvard"},
	{"Bob Johnson", "Mathematics", "Stanford"},
	{"Alice Brown", "Biology", "CalTech"},
	{"Charlie Davis", "Chemistry", "Yale"},
}

var courseSeeds = []courseSeed{
	{1, "Introduction to Programming"},
	{1, "Data Structures"},
	{1, "Algorithms"},
	{2, "Quantum Mechanics"},
	{2, "Thermodynamics"},
	{3, "Linear Algebra"},
	{3, "Calculus"},
	{4, "Molecular Biology"},
	{4, "Genetics"},
	{5, "Organic Chemistry"},
	{5, "Inorganic Chemistry"},
}

var userSeeds = []userSeed{
	{"user1", "password1", "user1@example.com"},
	{"user2", "password2", "user2@example.com"},
	{"user3", "password3", "user3@example.com"},
	{"user4", "password4", "user4@example.com"},
	{"user5", "password5", "user5@example.com"},
	{"user6", "password6", "user6@example.com"},
}

var ratingSeeds = []ratingSeed{
	{1, 1, "user1", 5, "Great professor!", "offline", "A", "user1@example.com", "2023-05-01"},
	{1, 2, "user2", 4, "Very knowledgeable", "online", "B+", "user2@example.com", "2023-04-15"},
	{2, 4, "user3", 5, "Excellent explanations", "offline", "A-", "user3@example.com", "2023-05-10"},
	{3, 6, "user4", 4, "Challenging but rewarding", "online", "B", "user4@example.com", "2023-05-05"},
	{4, 8, "user5", 5, "Inspiring lectures", "offline", "A+", "user5@example.com", "2023-05-12"},
	{5, 10, "user6", 4, "Clear and concise", "online", "A-", "user6@example.com", "2023-05-08"},
}

func courseRef(id int) *int { return &id }

var tagSeeds = []tagSeed{
	{1, nil, "Helpful", 10},
	{1, nil, "Clear explanations", 8},
	{1, nil, "Tough grader", 5},
	{1, courseRef(1), "Engaging", 6},
	{1, courseRef(1), "Challenging", 4},
	{2, nil, "Knowledgeable", 7},
	{2, nil, "Inspiring", 5},
	{2, courseRef(4), "Complex topics", 3},
	{3, nil, "Patient", 6},
	{3, nil, "Approachable", 4},
}

// SeedDatabase inserts the demo catalog on an empty database. A
// populated professors table means seeding already ran, so it is
// skipped.
func (s *Storage) SeedDatabase(ctx context.Context) error {
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM professors").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check professors: %w", err)
	}

	if count > 0 {
		log.Printf("Database already has %d professors, skipping seed", count)
		return nil
	}

	log.Println("Starting database seeding...")

	for _, p := range professorSeeds {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO professors (name, department, university) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			p.Name, p.Department, p.University)
		if err != nil {
			return fmt.Errorf("failed to seed professor %s: %w", p.Name, err)
		}
	}

	for _, c := range courseSeeds {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO courses (professor_id, name) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`,
			c.ProfessorID, c.Name)
		if err != nil {
			return fmt.Errorf("failed to seed course %s: %w", c.Name, err)
		}
	}

	for _, u := range userSeeds {
		// Demo accounts still get real hashes, never plaintext.
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.UserID, err)
		}

		_, err = s.pool.Exec(ctx,
			`INSERT INTO users (user_id, password, email) VALUES ($1, $2, $3)
			 ON CONFLICT (user_id) DO NOTHING`,
			u.UserID, string(hash), u.Email)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.UserID, err)
		}
	}

	for _, r := range ratingSeeds {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO ratings (professor_id, course_id, user_id, rating, review, course_type, grade, email, date)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			r.ProfessorID, r.CourseID, r.UserID, r.Rating, r.Review, r.CourseType, r.Grade, r.Email, r.Date)
		if err != nil {
			return fmt.Errorf("failed to seed rating by %s: %w", r.UserID, err)
		}
	}

	for _, t := range tagSeeds {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO tags (professor_id, course_id, tag, count) VALUES ($1, $2, $3, $4)`,
			t.ProfessorID, t.CourseID, t.Tag, t.Count)
		if err != nil {
			return fmt.Errorf("failed to seed tag %s: %w", t.Tag, err)
		}
	}

	log.Printf("Seeding complete: %d professors, %d courses, %d users, %d ratings, %d tags",
		len(professorSeeds), len(courseSeeds), len(userSeeds), len(ratingSeeds), len(tagSeeds))

	return nil
}
