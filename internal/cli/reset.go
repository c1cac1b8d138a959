package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/musclemap/internal/db"
	"github.com/terraincognita07/musclemap/internal/security"
	"github.com/terraincognita07/musclemap/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 14

// RunResetPasswordCommand sets a temporary password for the account and prints it to out.
func RunResetPasswordCommand(database *gorm.DB, out io.Writer, email string) error {
	if services.NormalizeAuthEmail(email) == "" {
		return errors.New("a valid email is required")
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	auth := services.NewAuthService(db.NewUserRepository(database))
	user, err := auth.SetTemporaryPassword(email, temporaryPassword)
	if errors.Is(err, services.ErrUserNotFound) {
		return fmt.Errorf("user %s not found", services.NormalizeAuthEmail(email))
	}
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintf(out, "Password reset for %s\n", user.Email)
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "The user must change it after the next login.")
	return nil
}
