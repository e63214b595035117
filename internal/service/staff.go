package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cafecalmo/internal/database"
	"cafecalmo/internal/model"
)

var (
	ErrLoginTaken         = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type StaffService struct {
	db *database.DB
}

func NewStaffService(db *database.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) Register(ctx context.Context, login, password string) (*model.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	staff := model.Staff{Login: login, PasswordHash: hash, CreatedAt: time.Now().UTC()}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO staff (login, password_hash, created_at) VALUES (?, ?, ?) RETURNING id`,
		login, hash, database.ToMillis(staff.CreatedAt),
	).Scan(&staff.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("insert staff: %w", err)
	}

	return &staff, nil
}

func (s *StaffService) Authenticate(ctx context.Context, login, password string) (*model.Staff, error) {
	var staff model.Staff
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, password_hash, created_at FROM staff WHERE login = ?`, login,
	).Scan(&staff.ID, &staff.Login, &staff.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	staff.CreatedAt = database.FromMillis(createdAt)

	if err := bcrypt.CompareHashAndPassword(staff.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &staff, nil
}
