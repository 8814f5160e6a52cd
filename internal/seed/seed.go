package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/alumnihub/internal/app/models"
	appRepos "github.com/yigit/alumnihub/internal/app/repositories"
	"github.com/yigit/alumnihub/internal/config"
	pkgAuth "github.com/yigit/alumnihub/internal/pkg/auth"
)

// CreateDefaultAdmin seeds the single privileged account. It only runs on a
// fresh store, so the admin exists exactly once per process lifetime.
func CreateDefaultAdmin(repos *appRepos.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	if repos.UserRepository.Count(false) > 0 {
		return nil
	}

	hashedPassword, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		ID:        uuid.NewString(),
		Username:  cfg.Admin.Username,
		Email:     cfg.Admin.Email,
		Password:  hashedPassword,
		FullName:  cfg.Admin.FullName,
		UserType:  appModels.UserTypeAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := repos.UserRepository.Create(admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("userID", admin.ID).Str("username", admin.Username).Msg("Default admin user created")
	return nil
}
