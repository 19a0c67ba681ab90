// internal/storage/postgres/internships.go
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

const internshipColumns = `id, posted_by, title, company, location, description,
	eligibility, duration, stipend, status, created_at, updated_at`

// InternshipRepo implements the storage.InternshipRepository interface using
// PostgreSQL.
type InternshipRepo struct {
	db Querier
}

// NewInternshipRepo creates a new InternshipRepo.
func NewInternshipRepo(db *pgxpool.Pool) *InternshipRepo {
	return &InternshipRepo{db: db}
}

// WithTx creates a new InternshipRepo bound to the transaction.
func (r *InternshipRepo) WithTx(tx pgx.Tx) storage.InternshipRepository {
	return &InternshipRepo{db: tx}
}

var _ storage.InternshipRepository = (*InternshipRepo)(nil)

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var in models.Internship
	err := row.Scan(
		&in.ID,
		&in.PostedBy,
		&in.Title,
		&in.Company,
		&in.Location,
		&in.Description,
		&in.Eligibility,
		&in.Duration,
		&in.Stipend,
		&in.Status,
		&in.CreatedAt,
		&in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if in.Eligibility == nil {
		in.Eligibility = []string{}
	}
	return &in, nil
}

// Create saves a new posting, recording the poster.
func (r *InternshipRepo) Create(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	in := &models.Internship{
		ID:          uuid.New(),
		PostedBy:    req.PostedBy,
		Title:       req.Title,
		Company:     req.Company,
		Eligibility: []string{},
		Status:      models.InternshipStatusOpen,
	}
	if req.Location != nil {
		in.Location = *req.Location
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Eligibility != nil {
		in.Eligibility = req.Eligibility
	}
	if req.Duration != nil {
		in.Duration = *req.Duration
	}
	in.Stipend = req.Stipend
	if req.Status != nil {
		in.Status = *req.Status
	}

	query := fmt.Sprintf(`
		INSERT INTO internships (id, posted_by, title, company, location, description,
			eligibility, duration, stipend, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s
	`, internshipColumns)

	row := r.db.QueryRow(ctx, query,
		in.ID,
		in.PostedBy,
		in.Title,
		in.Company,
		in.Location,
		in.Description,
		in.Eligibility,
		in.Duration,
		in.Stipend,
		in.Status,
	)

	created, err := scanInternship(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating internship: foreign key violation (posted_by: %s): %v\n", req.PostedBy, err)
			return nil, fmt.Errorf("failed to create internship: invalid poster: %w", storage.ErrConflict)
		}
		log.Printf("Error creating internship: %v\n", err)
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}

	log.Printf("Internship created successfully with ID: %s", created.ID)
	return created, nil
}

// GetByID retrieves one posting. Postings are globally readable.
func (r *InternshipRepo) GetByID(ctx context.Context, req *dto.GetInternshipByIDRequest) (*models.Internship, error) {
	query := fmt.Sprintf(`SELECT %s FROM internships WHERE id = $1`, internshipColumns)

	in, err := scanInternship(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Internship not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning internship by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get internship by ID %s: %w", req.ID, err)
	}

	return in, nil
}

// List retrieves a filtered page of postings together with the total match
// count. Not owner-scoped. Count and page queries run concurrently.
func (r *InternshipRepo) List(ctx context.Context, req *dto.ListInternshipsRequest) (*dto.InternshipListResult, error) {
	conditions := []string{}
	args := []interface{}{}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("LOWER(status) = LOWER($%d)", len(args)))
	}
	if req.Company != nil {
		args = append(args, *req.Company)
		conditions = append(conditions, fmt.Sprintf("company ILIKE $%d", len(args)))
	}
	if req.StipendMin != nil {
		args = append(args, *req.StipendMin)
		conditions = append(conditions, fmt.Sprintf("stipend >= $%d", len(args)))
	}
	if req.StipendMax != nil {
		args = append(args, *req.StipendMax)
		conditions = append(conditions, fmt.Sprintf("stipend <= $%d", len(args)))
	}
	if req.Q != nil && *req.Q != "" {
		args = append(args, likePattern(*req.Q))
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR location ILIKE $%d OR description ILIKE $%d)",
			n, n, n, n))
	}

	countQuery := buildCountQuery("internships", conditions)
	countArgs := make([]interface{}, len(args))
	copy(countArgs, args)

	orderBy := parseSort(req.Sort, internshipSortColumns, "created_at DESC")
	pageQuery := buildListQuery("SELECT "+internshipColumns+" FROM internships", conditions, &args, orderBy, req.Page, req.Limit)

	var (
		items []models.Internship
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.db.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count internships: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.db.Query(gctx, pageQuery, args...)
		if err != nil {
			return fmt.Errorf("failed to query internships: %w", err)
		}
		defer rows.Close()

		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.Internship])
		if err != nil {
			return fmt.Errorf("failed to scan internships: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error listing internships: %v\n", err)
		return nil, err
	}

	if items == nil {
		items = []models.Internship{}
	}

	return &dto.InternshipListResult{Items: items, Total: total}, nil
}

// Update modifies an existing posting based on non-nil fields in the request
// DTO. Any authenticated caller may update; there is no owner filter here.
func (r *InternshipRepo) Update(ctx context.Context, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
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
	if req.Eligibility != nil {
		addSet("eligibility", req.Eligibility)
	}
	if req.Duration != nil {
		addSet("duration", *req.Duration)
	}
	if req.Stipend != nil {
		addSet("stipend", *req.Stipend)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for internship %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("%w on internship %s", storage.ErrEmptyUpdate, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE internships
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), internshipColumns)

	updated, err := scanInternship(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Internship not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating internship %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update internship %s: %w", req.ID, err)
	}

	log.Printf("Internship updated successfully: %s", updated.ID)
	return updated, nil
}
