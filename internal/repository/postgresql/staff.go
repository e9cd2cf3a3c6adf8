package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/salonova/scheduling-backend-go/internal/domain/staff"
	"github.com/salonova/scheduling-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

// GetByID implements staff.Repository.
func (s *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, display_name, title, is_active, is_bookable, created_at, updated_at
		FROM staff_profiles
		WHERE id = $1
	`

	var member staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.DisplayName,
		&member.Title,
		&member.IsActive,
		&member.IsBookable,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return member, nil
}

// ListActive implements staff.Repository.
func (s *staffRepositoryImpl) ListActive(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, display_name, title, is_active, is_bookable, created_at, updated_at
		FROM staff_profiles
		WHERE is_active = true
		ORDER BY display_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var member staff.Staff
		if err := rows.Scan(
			&member.ID,
			&member.DisplayName,
			&member.Title,
			&member.IsActive,
			&member.IsBookable,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active staff: %w", err)
	}

	return members, nil
}

// ListStaffIDsForService implements staff.Repository.
func (s *staffRepositoryImpl) ListStaffIDsForService(ctx context.Context, serviceID string) ([]string, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT staff_id
		FROM staff_services
		WHERE service_id = $1
	`

	rows, err := q.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for service: %w", err)
	}
	defer rows.Close()

	var staffIDs []string
	for rows.Next() {
		var staffID string
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("failed to scan staff id: %w", err)
		}
		staffIDs = append(staffIDs, staffID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff for service: %w", err)
	}

	return staffIDs, nil
}
