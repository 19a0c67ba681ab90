// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const jobColumns = `id, posted_by, title, company, location, description, requirements,
	salary_min, salary_max, job_type, status, date_added, deadline_date, interview_date,
	resume_version, links, notes, extra_fields, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.PostedBy,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Description,
		&job.Requirements,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.JobType,
		&job.Status,
		&job.DateAdded,
		&job.DeadlineDate,
		&job.InterviewDate,
		&job.ResumeVersion,
		&job.Links,
		&job.Notes,
		&job.ExtraFields,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Links == nil {
		job.Links = []models.Link{}
	}
	if job.ExtraFields == nil {
		job.ExtraFields = map[string]interface{}{}
	}
	return &job, nil
}

// Create saves a new job-tracking entry for the owner in the request.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		ID:          uuid.New(), // Generate ID server-side
		PostedBy:    req.PostedBy,
		Title:       req.Title,
		Company:     req.Company,
		Location:    "Not specified",
		JobType:     models.JobTypeFullTime,
		Status:      models.JobStatusApplied,
		DateAdded:   time.Now().UTC(),
		Links:       []models.Link{},
		ExtraFields: map[string]interface{}{},
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	} else {
		job.Requirements = []string{}
	}
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.DateAdded != nil {
		job.DateAdded = *req.DateAdded
	}
	job.DeadlineDate = req.DeadlineDate
	job.InterviewDate = req.InterviewDate
	if req.ResumeVersion != nil {
		job.ResumeVersion = *req.ResumeVersion
	}
	for _, l := range req.Links {
		job.Links = append(job.Links, models.Link{Label: l.Label, URL: l.URL})
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	if req.ExtraFields != nil {
		job.ExtraFields = req.ExtraFields
	}

	query := fmt.Sprintf(`
		INSERT INTO jobs (id, posted_by, title, company, location, description, requirements,
			salary_min, salary_max, job_type, status, date_added, deadline_date, interview_date,
			resume_version, links, notes, extra_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		job.ID,
		job.PostedBy,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		job.Requirements,
		job.SalaryMin,
		job.SalaryMax,
		job.JobType,
		job.Status,
		job.DateAdded,
		job.DeadlineDate,
		job.InterviewDate,
		job.ResumeVersion,
		job.Links,
		job.Notes,
		job.ExtraFields,
	)

	createdJob, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation (pipeline duplicate)
				log.Printf("Error creating job: duplicate pipeline entry (owner: %s, company: %s, title: %s): %v\n", req.PostedBy, req.Company, req.Title, err)
				return nil, fmt.Errorf("job already tracked for this company and title: %w", storage.ErrDuplicate)
			case "23503": // foreign_key_violation
				log.Printf("Error creating job: foreign key violation (posted_by: %s): %v\n", req.PostedBy, err)
				return nil, fmt.Errorf("failed to create job: invalid owner: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return createdJob, nil
}

// GetByID retrieves one job, scoped to the owner. A job belonging to someone
// else scans as no rows and surfaces as not found.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE id = $1 AND posted_by = $2
	`, jobColumns)
	row := r.db.QueryRow(ctx, query, req.ID, req.OwnerID)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s (owner %s)\n", req.ID, req.OwnerID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	return job, nil
}

// List retrieves a filtered page of the owner's jobs together with the total
// match count. The count and page queries run concurrently.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResult, error) {
	conditions := []string{"posted_by = $1"}
	args := []interface{}{req.OwnerID}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("LOWER(status) = LOWER($%d)", len(args)))
	}
	if req.Company != nil {
		args = append(args, *req.Company)
		conditions = append(conditions, fmt.Sprintf("company ILIKE $%d", len(args)))
	}
	if req.Q != nil && *req.Q != "" {
		args = append(args, likePattern(*req.Q))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR location ILIKE $%d OR description ILIKE $%d OR notes ILIKE $%d)",
			n, n, n, n, n))
	}

	countQuery := buildCountQuery("jobs", conditions)
	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	orderBy := parseSort(req.Sort, jobSortColumns, "date_added DESC")
	pageQuery := buildListQuery("SELECT "+jobColumns+" FROM jobs", conditions, &args, orderBy, req.Page, req.Limit)

	var (
		jobs  []models.Job
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count jobs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.db.Query(gctx, pageQuery, args...)
		if err != nil {
			return fmt.Errorf("failed to query jobs: %w", err)
		}
		defer rows.Close()

		jobs, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
		if err != nil {
			return fmt.Errorf("failed to scan jobs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error listing jobs for owner %s: %v\n", req.OwnerID, err)
		return nil, err
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return &dto.JobListResult{Jobs: jobs, Total: total}, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
// The WHERE clause is owner-scoped, so updating someone else's job reports
// not found.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Requirements != nil {
		addSet("requirements", req.Requirements)
	}
	if req.SalaryMin != nil {
		addSet("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addSet("salary_max", *req.SalaryMax)
	}
	if req.JobType != nil {
		addSet("job_type", *req.JobType)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.DateAdded != nil {
		addSet("date_added", *req.DateAdded)
	}
	if req.DeadlineDate != nil {
		addSet("deadline_date", *req.DeadlineDate)
	}
	if req.InterviewDate != nil {
		addSet("interview_date", *req.InterviewDate)
	}
	if req.ResumeVersion != nil {
		addSet("resume_version", *req.ResumeVersion)
	}
	if req.Links != nil {
		links := make([]models.Link, 0, len(req.Links))
		for _, l := range req.Links {
			links = append(links, models.Link{Label: l.Label, URL: l.URL})
		}
		addSet("links", links)
	}
	if req.Notes != nil {
		addSet("notes", *req.Notes)
	}
	if req.ExtraFields != nil {
		addSet("extra_fields", req.ExtraFields)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("%w on job %s", storage.ErrEmptyUpdate, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)
	idArg := len(args)
	args = append(args, req.OwnerID)
	ownerArg := len(args)

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d AND posted_by = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), idArg, ownerArg, jobColumns)

	row := r.db.QueryRow(ctx, query, args...)

	updatedJob, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %s (owner %s)\n", req.ID, req.OwnerID)
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error updating job %s: duplicate pipeline entry: %v\n", req.ID, err)
			return nil, fmt.Errorf("job already tracked for this company and title: %w", storage.ErrDuplicate)
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	log.Printf("Job updated successfully: %s", updatedJob.ID)
	return updatedJob, nil
}

// Delete removes a job by its ID, scoped to the owner.
func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	query := `DELETE FROM jobs WHERE id = $1 AND posted_by = $2`

	cmdTag, err := r.db.Exec(ctx, query, req.ID, req.OwnerID)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID: %s (owner %s)\n", req.ID, req.OwnerID)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", req.ID)
	return nil
}

// DeleteAll removes every job the owner has and reports how many went.
func (r *JobRepo) DeleteAll(ctx context.Context, req *dto.DeleteAllJobsRequest) (int, error) {
	query := `DELETE FROM jobs WHERE posted_by = $1`

	cmdTag, err := r.db.Exec(ctx, query, req.OwnerID)
	if err != nil {
		log.Printf("Error deleting jobs for owner %s: %v\n", req.OwnerID, err)
		return 0, fmt.Errorf("failed to delete jobs for owner %s: %w", req.OwnerID, err)
	}

	deleted := int(cmdTag.RowsAffected())
	log.Printf("Deleted %d jobs for owner %s", deleted, req.OwnerID)
	return deleted, nil
}

// Stats aggregates the owner's jobs by status into the fixed buckets. A
// status with no jobs reports zero.
func (r *JobRepo) Stats(ctx context.Context, req *dto.JobStatsRequest) (*models.JobStats, error) {
	query := `
		SELECT status, COUNT(*)
		FROM jobs
		WHERE posted_by = $1
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query, req.OwnerID)
	if err != nil {
		log.Printf("Error querying job stats for owner %s: %v\n", req.OwnerID, err)
		return nil, fmt.Errorf("failed to query job stats: %w", err)
	}
	defer rows.Close()

	stats := &models.JobStats{}
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			log.Printf("Error scanning job stats for owner %s: %v\n", req.OwnerID, err)
			return nil, fmt.Errorf("failed to scan job stats: %w", err)
		}
		stats.Total += count
		switch models.JobStatus(status) {
		case models.JobStatusApplied:
			stats.Applied = count
		case models.JobStatusInterview:
			stats.Interview = count
		case models.JobStatusOffer:
			stats.Offer = count
		case models.JobStatusAccepted:
			stats.Accepted = count
		case models.JobStatusRejected:
			stats.Rejected = count
		case models.JobStatusOpen:
			// Open entries are still awaiting an application decision.
			stats.Pending = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job stats: %w", err)
	}

	return stats, nil
}
