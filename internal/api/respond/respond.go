package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type payload struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func write(w http.ResponseWriter, status int, p payload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, payload{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, payload{Success: true, Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	write(w, status, payload{Success: false, Error: err.Error()})
}
