// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role distinguishes the two kinds of accounts the application serves.
type Role string

const (
	// RoleUser is a regular person tracking their own finances.
	RoleUser Role = "user"

	// RoleCA is a Chartered Accountant professional. CA accounts carry
	// licensing details on top of the regular account fields.
	RoleCA Role = "ca"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleCA
}

// Account represents an authenticated principal: either a regular user or a
// Chartered Accountant. Both kinds share identity and credential fields;
// CA-only attributes live in the embedded [CAProfile], which is nil for
// regular users so that its fields are omitted from JSON entirely.
type Account struct {
	// ID is a UUIDv7 string, unique across users and CAs.
	ID string `json:"id"`

	// FullName is the display name of the account holder.
	FullName string `json:"fullName"`

	// Email is the login identifier. It is stored lower-cased and is unique
	// across both account stores.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// Role is either [RoleUser] or [RoleCA].
	Role Role `json:"role"`

	*CAProfile

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CAProfile holds the professional details of a Chartered Accountant.
type CAProfile struct {
	LicenseNumber      string `json:"licenseNumber"`
	YearOfRegistration string `json:"yearOfRegistration"`
	PracticeArea       string `json:"practiceArea"`

	// IsVerified is set by an administrator once the license has been
	// checked. New CA accounts start unverified.
	IsVerified bool `json:"isVerified"`
}

// IsCA reports whether the account belongs to a Chartered Accountant.
func (a Account) IsCA() bool {
	return a.Role == RoleCA
}

// TableName returns the name of the database table that stores accounts
// of this role.
func (a Account) TableName() string {
	if a.IsCA() {
		return "chartered_accountants"
	}
	return "users"
}
