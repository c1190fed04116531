package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/config"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/database"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/logger"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/model"
)

// Seeds a demo hierarchy: one department with two courses, classes with
// public and private sections, a question bank per section, and a handful of
// principals with grants. Safe to run once on an empty database.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding demo content ===")

	deptID := insertDepartment(ctx, pool, "Engineering", "DIEF")

	dbCourse := insertCourse(ctx, pool, deptID, "Databases")
	netCourse := insertCourse(ctx, pool, deptID, "Computer Networks")

	dbClass := insertClass(ctx, pool, dbCourse, "2025/2026")
	netClass := insertClass(ctx, pool, netCourse, "2025/2026")

	sqlSection := insertSection(ctx, pool, dbClass, "SQL Basics", true)
	normSection := insertSection(ctx, pool, dbClass, "Normalization", false)
	tcpSection := insertSection(ctx, pool, netClass, "TCP/IP", true)
	// Reserved name for the cross-section flow; holds no questions of its own.
	insertSection(ctx, pool, dbClass, access.ReservedSectionName, false)

	seedQuestions(ctx, pool, sqlSection, "SQL")
	seedQuestions(ctx, pool, normSection, "normal form")
	seedQuestions(ctx, pool, tcpSection, "TCP")

	// Principal ids are seeded without dashes so they embed cleanly in
	// session tokens.
	insertPrincipal(ctx, pool, "root", model.RoleSuperAdmin)
	insertPrincipal(ctx, pool, "marin", model.RoleAdmin)
	insertPrincipal(ctx, pool, "chiara", model.RoleMaintainer)
	insertPrincipal(ctx, pool, "stud01", model.RoleStudent)

	insertGrant(ctx, pool, "marin", model.GrantManagedDepartment, deptID)
	insertGrant(ctx, pool, "chiara", model.GrantMaintainedCourse, dbCourse)
	insertGrant(ctx, pool, "stud01", model.GrantAccessibleSection, normSection)

	fmt.Println("Seed completed!")
}

func insertDepartment(ctx context.Context, pool *pgxpool.Pool, name, code string) uuid.UUID {
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO departments (name, code) VALUES ($1, $2) RETURNING id`,
		name, code,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("insert department %s: %v", code, err))
	}
	return id
}

func insertCourse(ctx context.Context, pool *pgxpool.Pool, departmentID uuid.UUID, name string) uuid.UUID {
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO courses (department_id, name) VALUES ($1, $2) RETURNING id`,
		departmentID, name,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("insert course %s: %v", name, err))
	}
	return id
}

func insertClass(ctx context.Context, pool *pgxpool.Pool, courseID uuid.UUID, name string) uuid.UUID {
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO classes (course_id, name) VALUES ($1, $2) RETURNING id`,
		courseID, name,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("insert class %s: %v", name, err))
	}
	return id
}

func insertSection(ctx context.Context, pool *pgxpool.Pool, classID uuid.UUID, name string, isPublic bool) uuid.UUID {
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO sections (class_id, name, is_public) VALUES ($1, $2, $3) RETURNING id`,
		classID, name, isPublic,
	).Scan(&id)
	if err != nil {
		panic(fmt.Sprintf("insert section %s: %v", name, err))
	}
	return id
}

func seedQuestions(ctx context.Context, pool *pgxpool.Pool, sectionID uuid.UUID, topic string) {
	for i := 1; i <= 10; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO questions (section_id, content, question_type, options, correct_answers, difficulty)
			 VALUES ($1, $2, 'MULTIPLE_CHOICE', $3, $4, 'MEDIUM')`,
			sectionID,
			fmt.Sprintf("Question %d about %s: which option is correct?", i, topic),
			[]string{"option a", "option b", "option c", "option d"},
			[]string{"option a"},
		)
		if err != nil {
			panic(fmt.Sprintf("insert question: %v", err))
		}
	}
	for i := 1; i <= 4; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO questions (section_id, content, question_type, correct_answers, difficulty)
			 VALUES ($1, $2, 'TRUE_FALSE', $3, 'EASY')`,
			sectionID,
			fmt.Sprintf("Statement %d about %s is correct.", i, topic),
			[]string{"true"},
		)
		if err != nil {
			panic(fmt.Sprintf("insert question: %v", err))
		}
	}
	for i := 1; i <= 5; i++ {
		_, err := pool.Exec(ctx,
			`INSERT INTO questions (section_id, content, question_type, correct_answers, difficulty)
			 VALUES ($1, $2, 'SHORT_ANSWER', $3, 'HARD')`,
			sectionID,
			fmt.Sprintf("Define term %d of %s.", i, topic),
			[]string{fmt.Sprintf("term %d", i)},
		)
		if err != nil {
			panic(fmt.Sprintf("insert question: %v", err))
		}
	}
}

func insertPrincipal(ctx context.Context, pool *pgxpool.Pool, id string, role model.Role) {
	if _, err := pool.Exec(ctx,
		`INSERT INTO principals (id, role) VALUES ($1, $2)`,
		id, role,
	); err != nil {
		panic(fmt.Sprintf("insert principal %s: %v", id, err))
	}
}

func insertGrant(ctx context.Context, pool *pgxpool.Pool, principalID string, grantType model.GrantType, targetID uuid.UUID) {
	if _, err := pool.Exec(ctx,
		`INSERT INTO access_grants (principal_id, grant_type, target_id) VALUES ($1, $2, $3)`,
		principalID, grantType, targetID,
	); err != nil {
		panic(fmt.Sprintf("insert grant for %s: %v", principalID, err))
	}
}
