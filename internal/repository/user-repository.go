package repository

import (
	"errors"
	"log"

	"github.com/SundayYogurt/signup_service/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByActivationToken(token string) (*domain.User, error)
	SaveUser(user *domain.User) error
	DeleteUser(user *domain.User) error
	CountUsers() (int64, error)
	// DeleteAllUsers is reset tooling, nothing user-facing calls it
	DeleteAllUsers() error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Printf("create user error: %v", err)
		return nil, errors.New("failed to create user")
	}

	return user, nil
}

// FindUserByEmail returns (nil, nil) when no user has that email, so
// the validator can tell "free" apart from a store failure.
func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by email error: %v", err)
		return nil, errors.New("failed to find user by email")
	}

	return user, nil
}

// FindUserByActivationToken only matches rows that are still inactive;
// a redeemed token never resolves again.
func (r *userRepository) FindUserByActivationToken(token string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.Where("activation_token = ? AND inactive = ?", token, true).First(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by activation token error: %v", err)
		return nil, errors.New("failed to find user by activation token")
	}

	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return errors.New("failed to save user")
	}
	return nil
}

func (r *userRepository) DeleteUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Unscoped().Delete(user).Error; err != nil {
		log.Printf("delete user error: %v", err)
		return errors.New("failed to delete user")
	}
	return nil
}

func (r *userRepository) CountUsers() (int64, error) {
	var count int64

	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		log.Printf("count users error: %v", err)
		return 0, errors.New("failed to count users")
	}
	return count, nil
}

func (r *userRepository) DeleteAllUsers() error {
	if err := r.db.Unscoped().Where("1 = 1").Delete(&domain.User{}).Error; err != nil {
		log.Printf("delete all users error: %v", err)
		return errors.New("failed to delete users")
	}
	return nil
}
