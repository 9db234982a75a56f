package impl

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"ratesmart/config"
	"ratesmart/internal/domain/entity"
	"ratesmart/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: "$2a$10$adminhash",
		},
	}
}

func businessCaller(id uuid.UUID) usecase.Principal {
	return usecase.Principal{ID: id, Roles: entity.Roles{entity.RoleBusiness}}
}

func adminCaller() usecase.Principal {
	return usecase.Principal{ID: AdminID("admin@example.com"), Roles: entity.Roles{entity.RoleAdmin}}
}

func ptr[T any](v T) *T {
	return &v
}
