// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fintrack server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the {"message": ...} body of HTTP responses. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidRequestBody is returned when the request body is not valid
	// JSON.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailAlreadyInUse is returned when a registration uses an email
	// that belongs to a user or a CA.
	MsgEmailAlreadyInUse = "Email already in use"

	// MsgLicenseAlreadyRegistered is returned when a CA registers a license
	// number that another CA already holds.
	MsgLicenseAlreadyRegistered = "License number already registered"

	// MsgUserNotFound is returned by getUser when the account behind a
	// valid token no longer exists.
	MsgUserNotFound = "User Not Found"

	// MsgTransactionNotFound is returned when an income or expense does not
	// exist or belongs to another account.
	MsgTransactionNotFound = "Transaction not found"

	// MsgNoToken is returned by the auth middleware when the request has no
	// Authorization header.
	MsgNoToken = "Not authorized, no token"

	// MsgTokenFailed is returned by the auth middleware for malformed,
	// expired or badly signed tokens.
	MsgTokenFailed = "Not Authorized, token failed"

	// MsgAccountNotFound is returned by the auth middleware when the token
	// subject matches no account.
	MsgAccountNotFound = "Not authorized, user not found"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests, please try again later"

	// MsgRequestTimeout is returned when a request runs past the configured
	// server request timeout.
	MsgRequestTimeout = "Request timed out"

	// MsgServiceUnavailable is returned by /healthz when the database
	// cannot be reached.
	MsgServiceUnavailable = "Service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Server error"
)
