// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const applicationColumns = `id, owner_id, company, role_title, status, deadline_date,
	interview_date, resume_version, links, notes, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.OwnerID,
		&app.Company,
		&app.RoleTitle,
		&app.Status,
		&app.DeadlineDate,
		&app.InterviewDate,
		&app.ResumeVersion,
		&app.Links,
		&app.Notes,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if app.Links == nil {
		app.Links = []models.Link{}
	}
	return &app, nil
}

// Create saves a new application for the owner in the request.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		ID:        uuid.New(),
		OwnerID:   req.OwnerID,
		Company:   req.Company,
		RoleTitle: req.RoleTitle,
		Status:    models.ApplicationStatusApplied,
		Links:     []models.Link{},
	}
	if req.Status != nil {
		app.Status = *req.Status
	}
	app.DeadlineDate = req.DeadlineDate
	app.InterviewDate = req.InterviewDate
	if req.ResumeVersion != nil {
		app.ResumeVersion = *req.ResumeVersion
	}
	for _, l := range req.Links {
		app.Links = append(app.Links, models.Link{Label: l.Label, URL: l.URL})
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	query := fmt.Sprintf(`
		INSERT INTO applications (id, owner_id, company, role_title, status, deadline_date,
			interview_date, resume_version, links, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s
	`, applicationColumns)

	row := r.db.QueryRow(ctx, query,
		app.ID,
		app.OwnerID,
		app.Company,
		app.RoleTitle,
		app.Status,
		app.DeadlineDate,
		app.InterviewDate,
		app.ResumeVersion,
		app.Links,
		app.Notes,
	)

	created, err := scanApplication(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating application: foreign key violation (owner: %s): %v\n", req.OwnerID, err)
			return nil, fmt.Errorf("failed to create application: invalid owner: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves one application without owner scoping; the service
// decides whether the caller may touch it.
func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", req.ID, err)
	}

	return app, nil
}

// ListByUser retrieves a filtered page of one user's applications together
// with the total match count. Count and page queries run concurrently.
func (r *ApplicationRepo) ListByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) (*dto.ApplicationListResult, error) {
	conditions := []string{"owner_id = $1"}
	args := []interface{}{req.UserID}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("LOWER(status) = LOWER($%d)", len(args)))
	}
	if req.Company != nil {
		args = append(args, *req.Company)
		conditions = append(conditions, fmt.Sprintf("company ILIKE $%d", len(args)))
	}

	countQuery := buildCountQuery("applications", conditions)
	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	orderBy := orderClause(req.SortBy, req.SortDir, applicationSortColumns, "created_at DESC")
	pageQuery := buildListQuery("SELECT "+applicationColumns+" FROM applications", conditions, &args, orderBy, req.Page, req.Limit)

	var (
		items []models.Application
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.db.Query(gctx, pageQuery, args...)
		if err != nil {
			return fmt.Errorf("failed to query applications: %w", err)
		}
		defer rows.Close()

		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
		if err != nil {
			return fmt.Errorf("failed to scan applications: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error listing applications for user %s: %v\n", req.UserID, err)
		return nil, err
	}

	if items == nil {
		items = []models.Application{}
	}

	return &dto.ApplicationListResult{Items: items, Total: total}, nil
}

// Update modifies an existing application based on non-nil fields in the
// request DTO.
func (r *ApplicationRepo) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.RoleTitle != nil {
		addSet("role_title", *req.RoleTitle)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
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

	if len(setClauses) == 0 {
		log.Printf("Update called for application %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("%w on application %s", storage.ErrEmptyUpdate, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE applications
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), applicationColumns)

	updated, err := scanApplication(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application %s: %w", req.ID, err)
	}

	log.Printf("Application updated successfully: %s", updated.ID)
	return updated, nil
}

// UpdateStatus moves an application to a new pipeline status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, applicationColumns)

	updated, err := scanApplication(r.db.QueryRow(ctx, query, req.Status, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update application status %s: %w", req.ID, err)
	}

	return updated, nil
}
