// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/app"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/store"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken], loads the account named by the token
// subject and stores it in the request context with [utils.WithAccount].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([app.MsgNoToken]);
//   - the header is not "Bearer <token>" or the token is invalid or expired
//     ([app.MsgTokenFailed]);
//   - no user or CA has the token subject as id ([app.MsgAccountNotFound]).
//
// Storage failures while loading the account answer 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, app.MsgTokenFailed, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, app.MsgTokenFailed, http.StatusUnauthorized)
			return
		}

		account, err := h.services.AuthService.FindAccount(ctx, token.AccountID)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				log.Debug().Str("account_id", token.AccountID).Msg("token subject has no account")
				utils.WriteMessage(w, app.MsgAccountNotFound, http.StatusUnauthorized)
				return
			}

			log.Err(err).Str("account_id", token.AccountID).Msg("error loading authenticated account")
			utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		ctx = utils.WithAccount(ctx, &account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
