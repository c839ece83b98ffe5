package service

import (
	"blogql/internal/config"
	"blogql/internal/repository"
	"blogql/internal/storage"
)

type Service struct {
	Auth AuthService
	User UserService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	auth := NewAuthService(cfg)

	return &Service{
		Auth: auth,
		User: NewUserService(rep.User, auth),
		Post: NewPostService(rep.Post, rep.User, storage),
	}
}
