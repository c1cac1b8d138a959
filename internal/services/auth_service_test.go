package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/musclemap/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthUserRepo struct {
	users  []models.User
	saved  int
	nextID uint
}

func (stub *stubAuthUserRepo) ExistsByEmail(email string) (bool, error) {
	_, found, err := stub.FindByEmail(email)
	return found, err
}

func (stub *stubAuthUserRepo) FindByEmail(email string) (models.User, bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *stubAuthUserRepo) FindByID(userID uint) (models.User, bool, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *stubAuthUserRepo) Create(user *models.User) error {
	stub.nextID++
	user.ID = stub.nextID
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubAuthUserRepo) Save(user *models.User) error {
	stub.saved++
	for index := range stub.users {
		if stub.users[index].ID == user.ID {
			stub.users[index] = *user
		}
	}
	return nil
}

func newTestAuthService() (*AuthService, *stubAuthUserRepo) {
	repo := &stubAuthUserRepo{}
	return NewAuthService(repo).WithHashCost(bcrypt.MinCost), repo
}

func TestRegisterAndAuthenticate(t *testing.T) {
	service, repo := newTestAuthService()

	user, err := service.Register(" Lifter@Example.com ", "StrongPass1")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.ID == 0 || user.Email != "lifter@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if repo.users[0].PasswordHash == "StrongPass1" {
		t.Fatal("expected password to be hashed")
	}

	authenticated, err := service.Authenticate("LIFTER@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
}

func TestRegisterRejectsDuplicatesAndWeakPasswords(t *testing.T) {
	service, _ := newTestAuthService()

	if _, err := service.Register("lifter@example.com", "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := service.Register("lifter@example.com", "StrongPass1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if _, err := service.Register("LIFTER@example.com", "StrongPass2"); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if _, err := service.Register("not-an-email", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	service, _ := newTestAuthService()
	if _, err := service.Register("lifter@example.com", "StrongPass1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	for _, candidate := range [][2]string{
		{"lifter@example.com", "WrongPass1"},
		{"missing@example.com", "StrongPass1"},
		{"", ""},
	} {
		if _, err := service.Authenticate(candidate[0], candidate[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q) expected ErrInvalidCredentials, got %v", candidate[0], err)
		}
	}
}

func TestSetTemporaryPassword(t *testing.T) {
	service, repo := newTestAuthService()
	if _, err := service.Register("lifter@example.com", "StrongPass1"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := service.SetTemporaryPassword("lifter@example.com", "TempPass99")
	if err != nil {
		t.Fatalf("SetTemporaryPassword() unexpected error: %v", err)
	}
	if !user.MustChangePassword || repo.saved != 1 {
		t.Fatalf("expected saved user flagged for password change, got %+v", user)
	}
	if _, err := service.Authenticate("lifter@example.com", "TempPass99"); err != nil {
		t.Fatalf("expected temporary password to work, got %v", err)
	}
	if _, err := service.SetTemporaryPassword("ghost@example.com", "TempPass99"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByID(t *testing.T) {
	service, _ := newTestAuthService()
	if _, err := service.FindByID(42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	service, _ := newTestAuthService()
	registered, err := service.Register("lifter@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if _, err := service.SetTemporaryPassword("lifter@example.com", "TempPass99"); err != nil {
		t.Fatalf("SetTemporaryPassword() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		current string
		next    string
		wantErr error
	}{
		{name: "wrong current password", current: "Nope12345", next: "NewStrong2", wantErr: ErrInvalidCredentials},
		{name: "unchanged password", current: "TempPass99", next: "TempPass99", wantErr: ErrPasswordUnchanged},
		{name: "weak new password", current: "TempPass99", next: "short", wantErr: ErrWeakPassword},
	}
	for _, tc := range tests {
		if _, err := service.ChangePassword(registered.ID, tc.current, tc.next); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	user, err := service.ChangePassword(registered.ID, "TempPass99", "NewStrong2")
	if err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}
	if user.MustChangePassword {
		t.Fatal("expected forced-change flag to be cleared")
	}
	if _, err := service.Authenticate("lifter@example.com", "NewStrong2"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}
	if _, err := service.ChangePassword(99, "TempPass99", "NewStrong2"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
