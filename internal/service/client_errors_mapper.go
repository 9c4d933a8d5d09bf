package service

import (
	"errors"
	"strings"

	"github.com/lmiranda/quest-keeper/internal/adapter"
	"github.com/lmiranda/quest-keeper/internal/app"
	"github.com/lmiranda/quest-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a business
// error, so the presentation layer matches the same sentinels on both sides
// of the wire.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpired
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgItemNotFound:
			return store.ErrItemNotFound
		case app.MsgMemberNotFound:
			return store.ErrMembershipNotFound
		default:
			return store.ErrCampaignNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgAlreadyJoined:
			return store.ErrAlreadyMember
		}
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
