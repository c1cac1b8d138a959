package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubUserCounter struct {
	count int64
	err   error
}

func (stub stubUserCounter) CountUsers() (int64, error) {
	return stub.count, stub.err
}

func TestSetupStatus(t *testing.T) {
	store := newStubCoachingStore()
	if _, err := NewOnboardingService(store, nil).CreateProfile(3, validProfileInput()); err != nil {
		t.Fatalf("CreateProfile() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		counter stubUserCounter
		userID  uint
		want    SetupStatus
		wantErr bool
	}{
		{name: "no accounts", counter: stubUserCounter{count: 0}, want: SetupStatus{NeedsAccount: true}},
		{name: "anonymous with accounts", counter: stubUserCounter{count: 2}, want: SetupStatus{}},
		{name: "signed in without profile", counter: stubUserCounter{count: 2}, userID: 9, want: SetupStatus{SignedIn: true, NeedsProfile: true}},
		{name: "signed in with profile", counter: stubUserCounter{count: 2}, userID: 3, want: SetupStatus{SignedIn: true}},
		{name: "count failure", counter: stubUserCounter{err: errors.New("db down")}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewSetupService(tc.counter, store).Status(tc.userID)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Status() unexpected error %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Status() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetupStatusProfileLookupFailure(t *testing.T) {
	store := newStubCoachingStore()
	store.findErr = errStubStore

	if _, err := NewSetupService(stubUserCounter{count: 1}, store).Status(3); !errors.Is(err, errStubStore) {
		t.Fatalf("expected store failure, got %v", err)
	}
}
