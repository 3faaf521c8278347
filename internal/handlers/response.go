package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"petstore/internal/apperr"
)

type messageResponse struct {
	Message string `json:"message"`
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithError writes the public message for err. Unexpected errors are
// logged with msg and answered with a bare 500.
func respondWithError(w http.ResponseWriter, logger zerolog.Logger, err error, msg string) {
	status, public := apperr.Resolve(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg(msg)
	}
	respondWithJSON(w, status, messageResponse{Message: public})
}

// decodeBody treats an empty body as an empty object.
func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return apperr.ErrInvalidBody.Wrap(err)
	}
	return nil
}
