package http

import (
	"errors"
	"net/http"

	"github.com/lmiranda/quest-keeper/internal/service"
	"github.com/lmiranda/quest-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrAccessDenied:             http.StatusForbidden,
	service.ErrVersionIsNotSpecified:    http.StatusBadRequest,
	service.ErrValidationNameRequired:   http.StatusBadRequest,
	service.ErrValidationUnknownKind:    http.StatusBadRequest,
	service.ErrValidationInvalidStatus:  http.StatusBadRequest,
	service.ErrValidationInvalidType:    http.StatusBadRequest,
	service.ErrValidationInvalidGroup:   http.StatusBadRequest,
	service.ErrValidationInvalidLevel:   http.StatusBadRequest,
	service.ErrValidationSelfParent:     http.StatusBadRequest,
	service.ErrValidationParentNotFound: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCampaignNotFound:   http.StatusNotFound,
	store.ErrInviteCodeTaken:    http.StatusConflict,
	store.ErrAlreadyMember:      http.StatusConflict,
	store.ErrMembershipNotFound: http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,
	store.ErrProfileNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
