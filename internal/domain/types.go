package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidInput    = errors.New("invalid input")
)

// Response standardizes API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// SearchMeta accompanies search responses.
type SearchMeta struct {
	Query      string `json:"query"`
	TotalItems int    `json:"totalItems"`
}
