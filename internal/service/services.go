package service

import (
	"github.com/avoronin/go-user-gate/internal/crypto"
	"github.com/avoronin/go-user-gate/internal/logger"
	"github.com/avoronin/go-user-gate/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, logger),
	}
}
