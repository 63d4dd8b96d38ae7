package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/SundayYogurt/signup_service/internal/domain"
	"github.com/SundayYogurt/signup_service/internal/dto"
	"github.com/SundayYogurt/signup_service/internal/helper/utils"
	"github.com/SundayYogurt/signup_service/internal/interfaces"
	"github.com/SundayYogurt/signup_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const activationTokenLength = 16

type UserService interface {
	Register(input dto.UserSignup) error
	Activate(token string) error
}

type userService struct {
	repo   repository.UserRepository
	mailer interfaces.Mailer

	// messaging
	producer interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	mailer interfaces.Mailer,
	producer interfaces.ProducerHandler,
) UserService {
	return &userService{
		repo:     repo,
		mailer:   mailer,
		producer: producer,
	}
}

// Register expects an already validated payload. The store write and
// the activation mail are one logical unit: a failed send rolls the
// row back so no never-notified inactive user survives.
func (u *userService) Register(input dto.UserSignup) error {
	if input.Username == nil || input.Email == nil || input.Password == nil {
		return errors.New("invalid inputs")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	token, err := utils.RandomToken(activationTokenLength)
	if err != nil {
		return errors.New("failed to generate activation token")
	}

	newUser := &domain.User{
		Username:        *input.Username,
		Email:           *input.Email,
		PasswordHash:    string(hashedPassword),
		ActivationToken: &token,
		Inactive:        true,
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		return err
	}
	if usr == nil || usr.ID == 0 {
		return errors.New("failed to create user")
	}

	if err := u.mailer.SendActivationEmail(usr.Email, token); err != nil {
		log.Printf("activation mail error: %v", err)
		if delErr := u.repo.DeleteUser(usr); delErr != nil {
			log.Printf("rollback after mail failure error: %v", delErr)
		}
		return ErrEmailDelivery
	}

	// publish event (optional)
	if u.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"email":"%s"}`,
			usr.ID, usr.Email,
		)
		_ = u.producer.PublishMessage([]byte("user.created"), []byte(payload))
	}

	return nil
}

// Activate redeems an activation token. The token is attacker
// controlled, so it is matched verbatim and the error never says
// whether it was wrong or already redeemed.
func (u *userService) Activate(token string) error {
	if token == "" {
		return ErrInvalidActivation
	}

	user, err := u.repo.FindUserByActivationToken(token)
	if err != nil {
		return err
	}
	if user == nil || user.ID == 0 {
		return ErrInvalidActivation
	}

	user.Inactive = false
	user.ActivationToken = nil
	if err := u.repo.SaveUser(user); err != nil {
		return err
	}

	// publish event (optional)
	if u.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"email":"%s"}`,
			user.ID, user.Email,
		)
		_ = u.producer.PublishMessage([]byte("user.activated"), []byte(payload))
	}

	return nil
}
