package models

// User mirrors the user object returned by the session endpoint. Field names
// follow the backend's JSON contract; OIDC-derived name parts keep their
// snake_case spelling.
type User struct {
	ID                       string   `json:"id"`
	Email                    string   `json:"email"`
	GivenName                string   `json:"given_name,omitempty"`
	FamilyName               string   `json:"family_name,omitempty"`
	Name                     string   `json:"name,omitempty"`
	NotificationEmailEnabled bool     `json:"notificationEmailEnabled,omitempty"`
	SubscriptionTier         string   `json:"subscriptionTier,omitempty"`
	Roles                    []string `json:"roles,omitempty"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DisplayName returns the best human-readable name available: the full name,
// then given+family name, then the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.GivenName != "" || u.FamilyName != "" {
		if u.GivenName == "" {
			return u.FamilyName
		}
		if u.FamilyName == "" {
			return u.GivenName
		}
		return u.GivenName + " " + u.FamilyName
	}
	return u.Email
}

// MergeUser overlays the fields the server returned from a profile update
// onto the cached user. The server omits unchanged fields, so zero values in
// override are treated as absent. Boolean toggles are always taken from the
// override because false is a meaningful value for them.
func MergeUser(base, override *User) *User {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}
	merged := *base
	if override.ID != "" {
		merged.ID = override.ID
	}
	if override.Email != "" {
		merged.Email = override.Email
	}
	if override.GivenName != "" {
		merged.GivenName = override.GivenName
	}
	if override.FamilyName != "" {
		merged.FamilyName = override.FamilyName
	}
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.SubscriptionTier != "" {
		merged.SubscriptionTier = override.SubscriptionTier
	}
	if len(override.Roles) > 0 {
		merged.Roles = override.Roles
	}
	merged.NotificationEmailEnabled = override.NotificationEmailEnabled
	return &merged
}

// Session is the client-side mirror of the server session endpoint response.
// Invariant: Authenticated implies User is non-nil; the transport layer
// enforces this by treating an authenticated response without a user as
// unauthenticated.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          *User  `json:"user,omitempty"`
	CSRFToken     string `json:"csrfToken,omitempty"`
}

// ProfileUpdate carries the fields a user may change about themselves.
// Pointer fields distinguish "leave unchanged" (nil) from an explicit value.
type ProfileUpdate struct {
	FirstName                *string `json:"firstName,omitempty"`
	LastName                 *string `json:"lastName,omitempty"`
	NotificationEmailEnabled *bool   `json:"notificationEmailEnabled,omitempty"`
}
