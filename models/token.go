// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or verified bearer token. The subject claim carries
// the account id, copied into AccountID for convenience.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact form sent in the Authorization header.
	SignedString string `json:"-"`
	AccountID    string `json:"-"`
}

func (t *Token) String() string {
	return t.SignedString
}
