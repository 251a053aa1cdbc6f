package domain

// AccountRole is the authorization role carried in the session token ("tipo").
type AccountRole string

const (
	RoleUser  AccountRole = "user"
	RoleAdmin AccountRole = "admin"
)

func (r AccountRole) String() string { return string(r) }

func (r AccountRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r AccountRole) IsAdmin() bool { return r == RoleAdmin }

// AccountStatus is the lifecycle state of an account.
// Fresh accounts start pending; only an admin moves them to active and back.
type AccountStatus string

const (
	StatusPending AccountStatus = "pending"
	StatusActive  AccountStatus = "active"
)

func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive:
		return true
	}
	return false
}

// NotificationKind identifies which templated message the dispatcher sends.
type NotificationKind string

const (
	NotifyAdminNewRegistration NotificationKind = "admin_new_registration"
	NotifyUserApproved         NotificationKind = "user_approved"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotifyAdminNewRegistration, NotifyUserApproved:
		return true
	}
	return false
}
