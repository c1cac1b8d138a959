package services

import (
	"errors"

	"github.com/terraincognita07/musclemap/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrPasswordHashFailed     = errors.New("hash password failed")
	ErrPasswordUnchanged      = errors.New("new password must differ")
)

type AuthUserRepository interface {
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
	cost  int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// WithHashCost returns a copy using the given bcrypt cost; tests use bcrypt.MinCost.
func (service *AuthService) WithHashCost(cost int) *AuthService {
	clone := *service
	clone.cost = cost
	return &clone
}

func (service *AuthService) Register(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := service.hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Email: email, PasswordHash: hash}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, found, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// SetTemporaryPassword replaces the password and flags the account so the
// next login must change it.
func (service *AuthService) SetTemporaryPassword(emailRaw string, password string) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, found, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	hash, err := service.hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.MustChangePassword = true
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ChangePassword verifies the current password, stores the new one and clears
// the forced-change flag left by a temporary password.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) (models.User, error) {
	user, err := service.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if currentPassword == newPassword {
		return models.User{}, ErrPasswordUnchanged
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return models.User{}, err
	}

	hash, err := service.hashPassword(newPassword)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.cost)
	if err != nil {
		return "", ErrPasswordHashFailed
	}
	return string(hash), nil
}
