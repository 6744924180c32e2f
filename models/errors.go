package models

import "github.com/pkg/errors"

// Базовые ошибки доменной логики. Обработчики оборачивают их через errors.Wrap
// с контекстом, контроллеры разбирают через errors.Is и транслируют в http статус.
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrConflict     = errors.New("запись уже существует")
	ErrInvalidState = errors.New("операция недопустима в текущем статусе")
	ErrInvalidInput = errors.New("некорректные данные запроса")
	ErrForbidden    = errors.New("недостаточно прав для операции")
)
