package services

import "github.com/terraincognita07/musclemap/internal/models"

// SetupStatus tells a client which first-run step to show: creating the
// first account, signing in, or entering the profile that seeds the plan.
type SetupStatus struct {
	NeedsAccount bool `json:"needs_setup"`
	SignedIn     bool `json:"signed_in"`
	NeedsProfile bool `json:"needs_profile"`
}

type SetupUserRepository interface {
	CountUsers() (int64, error)
}

type SetupProfileReader interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
}

type SetupService struct {
	users    SetupUserRepository
	profiles SetupProfileReader
}

func NewSetupService(users SetupUserRepository, profiles SetupProfileReader) *SetupService {
	return &SetupService{users: users, profiles: profiles}
}

// Status reports the first-run state. A zero userID is an anonymous caller.
func (service *SetupService) Status(userID uint) (SetupStatus, error) {
	usersCount, err := service.users.CountUsers()
	if err != nil {
		return SetupStatus{}, err
	}
	status := SetupStatus{NeedsAccount: usersCount == 0}
	if userID == 0 {
		return status, nil
	}

	_, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return SetupStatus{}, err
	}
	status.SignedIn = true
	status.NeedsProfile = !found
	return status, nil
}
