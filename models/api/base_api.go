package apimodels

import (
	"github.com/pkg/errors"

	"onboard-backend/models"
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// ErrorStatus подбирает http статус по доменной ошибке
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return 404
	case errors.Is(err, models.ErrConflict):
		return 409
	case errors.Is(err, models.ErrInvalidState),
		errors.Is(err, models.ErrInvalidInput):
		return 400
	case errors.Is(err, models.ErrForbidden):
		return 403
	}
	return 500
}
