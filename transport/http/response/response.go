package response

import (
	"encoding/json"
	"net/http"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/shared/logger"
)

// Success is the body of every mutating endpoint that finished its work.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

// WithSuccess sends the success/message pair the booking frontends expect.
func WithSuccess(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Success{Success: true, Message: message})
}

// WithJSON sends the payload as the bare response body. List endpoints rely
// on this to return a plain JSON array.
func WithJSON(writer http.ResponseWriter, code int, payload interface{}) {
	write(writer, code, payload)
}

// WithError sends the error body, with the HTTP status taken from the
// failure code carried by err.
func WithError(writer http.ResponseWriter, err error) {
	write(writer, failure.GetCode(err), Error{Error: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	write(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	write(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	write(writer, http.StatusServiceUnavailable, Error{Error: constant.ResponseErrorUnhealthy})
}

func write(writer http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
