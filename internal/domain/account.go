package domain

import "time"

// Account is a registered user of the admin application.
type Account struct {
	ID           int64
	Name         string
	Email        string
	Login        *string
	PasswordHash string
	Role         AccountRole
	Status       AccountStatus
	ProfilePhoto *string
	CreatedAt    time.Time
}

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// ProfileFields is the allow-list of account columns a profile update may touch.
// Nil fields are left unchanged.
type ProfileFields struct {
	Name         *string
	Email        *string
	PasswordHash *string
	ProfilePhoto *string
}

// IsEmpty reports whether no field is set.
func (f ProfileFields) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.PasswordHash == nil && f.ProfilePhoto == nil
}

// StatusCount is the number of accounts in a lifecycle state.
type StatusCount struct {
	Status AccountStatus
	Count  int64
}

// DailyCount is the number of registrations on a calendar day.
type DailyCount struct {
	Day   time.Time
	Count int64
}
