package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-match/internal/types"
)

// PostgresStore is a pgx-backed Provider. Jobs and candidates are stored one
// row each with their nested collections in jsonb columns.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// FindJobByID returns the job for an id or ErrJobNotFound.
func (s *PostgresStore) FindJobByID(ctx context.Context, id string) (*types.Job, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, company, location, salary, requirements, responsibilities
		 FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrJobNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to query job %s: %w", id, err)
	}
	return job, nil
}

// FindCandidateByID returns the candidate for an id or ErrCandidateNotFound.
func (s *PostgresStore) FindCandidateByID(ctx context.Context, id string) (*types.Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, email, skills, experience, education, summary
		 FROM candidates WHERE id = $1`, id)

	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrCandidateNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to query candidate %s: %w", id, err)
	}
	return candidate, nil
}

// ListJobs returns all jobs ordered by id.
func (s *PostgresStore) ListJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, location, salary, requirements, responsibilities
		 FROM jobs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]types.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job rows: %w", err)
	}
	return jobs, nil
}

// ListCandidates returns all candidates ordered by id.
func (s *PostgresStore) ListCandidates(ctx context.Context) ([]types.Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, skills, experience, education, summary
		 FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]types.Candidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate rows: %w", err)
	}
	return candidates, nil
}

// scanJob reads one job row, decoding the jsonb collections.
func scanJob(row pgx.Row) (*types.Job, error) {
	var job types.Job
	var requirementsJSON, responsibilitiesJSON []byte
	if err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary,
		&requirementsJSON, &responsibilitiesJSON); err != nil {
		return nil, err
	}

	if len(requirementsJSON) > 0 {
		if err := json.Unmarshal(requirementsJSON, &job.Requirements); err != nil {
			return nil, fmt.Errorf("failed to decode requirements for job %s: %w", job.ID, err)
		}
	}
	if len(responsibilitiesJSON) > 0 {
		if err := json.Unmarshal(responsibilitiesJSON, &job.Responsibilities); err != nil {
			return nil, fmt.Errorf("failed to decode responsibilities for job %s: %w", job.ID, err)
		}
	}
	return &job, nil
}

// scanCandidate reads one candidate row, decoding the jsonb collections.
func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var candidate types.Candidate
	var skillsJSON, experienceJSON, educationJSON []byte
	if err := row.Scan(&candidate.ID, &candidate.Name, &candidate.Email,
		&skillsJSON, &experienceJSON, &educationJSON, &candidate.Summary); err != nil {
		return nil, err
	}

	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &candidate.Skills); err != nil {
			return nil, fmt.Errorf("failed to decode skills for candidate %s: %w", candidate.ID, err)
		}
	}
	if len(experienceJSON) > 0 {
		if err := json.Unmarshal(experienceJSON, &candidate.Experience); err != nil {
			return nil, fmt.Errorf("failed to decode experience for candidate %s: %w", candidate.ID, err)
		}
	}
	if len(educationJSON) > 0 {
		if err := json.Unmarshal(educationJSON, &candidate.Education); err != nil {
			return nil, fmt.Errorf("failed to decode education for candidate %s: %w", candidate.ID, err)
		}
	}
	return &candidate, nil
}
