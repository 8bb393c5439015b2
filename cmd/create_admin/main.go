// Command create_admin creates or promotes a staff account from the command
// line, without going through the HTTP signup flow.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/app/repositories"
	"github.com/deren/greenhub/internal/config"
	"github.com/deren/greenhub/internal/db"
	"github.com/deren/greenhub/internal/pkg/auth"
	"github.com/deren/greenhub/internal/pkg/logger"
)

func main() {
	username := flag.String("username", "", "username for the staff account")
	email := flag.String("email", "", "email for the staff account")
	password := flag.String("password", "", "password for the staff account")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		logger.Error().Msg("Usage: create_admin -username NAME -email ADDR -password SECRET")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(database.Pool)
	id, err := userRepo.Create(ctx, &models.User{
		Username: *username,
		Email:    *email,
		Password: hashed,
		IsStaff:  true,
	})
	if err != nil {
		logger.Error().Err(err).Str("username", *username).Msg("Failed to create staff account")
		os.Exit(1)
	}

	logger.Info().Int64("userID", id).Str("username", *username).Msg("Staff account created")
}
