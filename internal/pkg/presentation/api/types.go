package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diwise/alert-mgmt/pkg/types"
)

type meta struct {
	TotalRecords uint64 `json:"totalRecords"`
	Count        uint64 `json:"count"`
}

type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func NewApiResponse[T any](c types.Collection[T]) ApiResponse {
	return ApiResponse{
		Meta: &meta{
			TotalRecords: c.TotalCount,
			Count:        c.Count,
		},
		Data: c.Data,
	}
}

type ApiError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

func (e ApiError) Byte() []byte {
	b, _ := json.Marshal(e)
	return b
}

type statusPatch struct {
	Status        types.AlertStatus `json:"status"`
	Actor         string            `json:"actor,omitempty"`
	Comment       string            `json:"comment,omitempty"`
	SnoozeMinutes int               `json:"snoozeMinutes,omitempty"`
}

type automationPatch struct {
	Status types.AutomationStatus `json:"status"`
}

type naturalLanguage struct {
	Text string `json:"text"`
}

// statusFromError maps the domain errors to http status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrDuplicateID), errors.Is(err, types.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
