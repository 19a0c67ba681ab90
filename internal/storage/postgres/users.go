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
)

const userColumns = `id, name, email, google_id, profile_picture, role, is_verified,
	password_hash, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.GoogleID,
		&u.ProfilePicture,
		&u.Role,
		&u.IsVerified,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves every account, ordered by name.
func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY name ASC`, userColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all users: %v\n", err)
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error scanning users: %v\n", err)
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// GetByID retrieves a single account by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}

	return user, nil
}

// GetByEmail retrieves a single account by email. The lookup is
// case-insensitive; emails are stored lowercase.
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByGoogleID retrieves a single account by the Google subject id.
func (r *UserRepo) GetByGoogleID(ctx context.Context, req *dto.GetUserByGoogleIDRequest) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE google_id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, req.GoogleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by google id: %v\n", err)
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}

	return user, nil
}

// Create inserts a new account row. Email is normalized to lowercase; the
// role always starts as user.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, name, email, google_id, profile_picture, role, is_verified, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s
	`, userColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		strings.ToLower(req.Email),
		req.GoogleID,
		req.ProfilePicture,
		models.RoleUser,
		true,
		req.PasswordHash,
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Attempted to create user with duplicate email %s: %v\n", req.Email, err)
			return nil, fmt.Errorf("email already registered: %w", storage.ErrDuplicate)
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// UpdateProfile modifies the self-service profile fields. Role and password
// are not reachable from here.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*models.User, error) {
	var setClauses []string
	args := []interface{}{}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.Email != nil {
		args = append(args, strings.ToLower(*req.Email))
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", len(args)))
	}

	if len(setClauses) == 0 {
		log.Printf("UpdateProfile called for user %s with no fields to change.", req.ID)
		return nil, fmt.Errorf("%w on user %s", storage.ErrEmptyUpdate, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Attempted to update user %s to duplicate email: %v\n", req.ID, err)
			return nil, fmt.Errorf("email already registered: %w", storage.ErrDuplicate)
		}
		log.Printf("Error updating user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update user %s: %w", req.ID, err)
	}

	return user, nil
}

// LinkGoogleID attaches a Google subject id to an existing account, marking
// it verified.
func (r *UserRepo) LinkGoogleID(ctx context.Context, req *dto.LinkGoogleIDRequest) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET google_id = $1, is_verified = TRUE, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, req.GoogleID, req.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Google id already linked to another account: %v\n", err)
			return nil, fmt.Errorf("google account already linked: %w", storage.ErrDuplicate)
		}
		log.Printf("Error linking google id for user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to link google id: %w", err)
	}

	return user, nil
}
