package blinktrade

import (
	"errors"
	"fmt"
)

// ErrMissingResponses — в ответе биржи нет секции Responses.
var ErrMissingResponses = errors.New("Ответ биржи без секции Responses.")

// RejectedError — биржа отклонила ордер. Сырая запись сохраняется
// для диагностики.
type RejectedError struct {
	Raw map[string]any
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("Биржа отклонила ордер: %v", e.Raw)
}

// MalformedGridError — строка табличного ответа не совпадает по длине
// с заголовком Columns.
type MalformedGridError struct {
	Columns int
	Row     int
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("Повреждённый табличный ответ: колонок %d, значений в строке %d.", e.Columns, e.Row)
}

// UnknownMsgTypeError — неизвестный дискриминатор MsgType в ответе.
type UnknownMsgTypeError struct {
	MsgType string
}

func (e *UnknownMsgTypeError) Error() string {
	return fmt.Sprintf("Неизвестный MsgType в ответе: %q.", e.MsgType)
}
