package domain

import "errors"

var ErrTodoNotFound = errors.New("tarea no encontrada")

// Todo is the demo entity kept from the first backend iteration. It lives in
// an in-process repository and is lost on restart.
type Todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
