package ports

import "github.com/VIPUlNEGI1/Flight/internal/domain"

type UserRepo interface {
	List() []domain.User
	FindByEmail(email string) (*domain.User, error)
	Create(u domain.User) error
	Delete(email string) error
}
