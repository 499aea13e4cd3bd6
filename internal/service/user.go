package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"mleague-tracker/internal/constants"
	"mleague-tracker/internal/domain"
	"mleague-tracker/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var (
	ErrNameTaken = errors.New("a player with that name already exists")
	ErrEmptyName = errors.New("player name must not be empty")
)

type UserService struct {
	repo   *repository.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo *repository.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, name string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := s.checkNameFree(ctx, name); err != nil {
		return nil, err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	now := nowUTC()
	user := &domain.User{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Str("name", name).Msg("user registered")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.Get(ctx, id)
}

// Rename changes the display name and cascades into the denormalized
// name snapshots of historical games.
func (s *UserService) Rename(ctx context.Context, id, newName string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyName
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.checkNameFree(ctx, newName); err != nil {
		return err
	}
	return s.repo.Rename(ctx, id, newName)
}

func (s *UserService) SetPhotoURL(ctx context.Context, id, photoURL string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.SetPhotoURL(ctx, id, photoURL)
}

// Delete removes the user and every game they appear in.
func (s *UserService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *UserService) checkNameFree(ctx context.Context, name string) error {
	_, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return ErrNameTaken
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}
