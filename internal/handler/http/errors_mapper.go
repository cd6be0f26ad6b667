// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/internal/validators"
)

// errorResponse is the status and client-facing message of a known error.
// An empty message means the error text itself is shown.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, so an error wrapping several known
// errors maps to the first listed one.
var errorResponses = []errorResponse{
	{target: validators.ErrMissingRequiredFields, status: http.StatusBadRequest},
	{target: validators.ErrInvalidRole, status: http.StatusBadRequest},
	{target: validators.ErrInvalidEmail, status: http.StatusBadRequest},
	{target: validators.ErrPasswordTooShort, status: http.StatusBadRequest},
	{target: validators.ErrMissingCAFields, status: http.StatusBadRequest},
	{target: validators.ErrMissingCredentials, status: http.StatusBadRequest},
	{target: validators.ErrCategoryRequired, status: http.StatusBadRequest},
	{target: validators.ErrSourceRequired, status: http.StatusBadRequest},
	{target: validators.ErrInvalidAmount, status: http.StatusBadRequest},
	{target: validators.ErrDateRequired, status: http.StatusBadRequest},
	{target: validators.ErrInvalidDate, status: http.StatusBadRequest},
	{target: validators.ErrInvalidDateRange, status: http.StatusBadRequest},
	{target: validators.ErrUnknownField, status: http.StatusBadRequest, message: app.MsgInvalidRequestBody},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenFailed},

	{target: store.ErrEmailAlreadyInUse, status: http.StatusConflict, message: app.MsgEmailAlreadyInUse},
	{target: store.ErrLicenseAlreadyRegistered, status: http.StatusConflict, message: app.MsgLicenseAlreadyRegistered},
	{target: store.ErrAccountNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
	{target: store.ErrTransactionNotFound, status: http.StatusNotFound, message: app.MsgTransactionNotFound},

	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: app.MsgRequestTimeout},
}

// responseFromError returns the status code and the message to show for
// err. Unknown errors become 500 with a generic message; their details only
// go to the log.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message == "" {
			return resp.status, resp.target.Error()
		}
		return resp.status, resp.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request logger and writes the mapped
// {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteMessage(w, message, status)
}
