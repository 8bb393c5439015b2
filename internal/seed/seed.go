package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/deren/greenhub/internal/app/models"
	appRepos "github.com/deren/greenhub/internal/app/repositories"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/auth"
)

// CreateDefaultData ensures a staff account exists so a fresh install can
// reach the dashboard. Credentials come from GREENHUB_ADMIN_USER /
// GREENHUB_ADMIN_PASSWORD, with development defaults.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	username := os.Getenv("GREENHUB_ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("GREENHUB_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		lgr.Warn().Str("username", username).Msg("GREENHUB_ADMIN_PASSWORD not set, using development default")
	}

	if _, err := userRepo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	staff := &appModels.User{
		Username: username,
		Email:    username + "@greenhub.local",
		Password: hashed,
		IsStaff:  true,
	}
	id, err := userRepo.Create(ctx, staff)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("username", username).Msg("Default staff account created")
	return nil
}
