package library

import "errors"

var (
	// ErrNoBooks — в библиотеке нет ни одной книги.
	ErrNoBooks = errors.New("no books in the library")

	// ErrInvalidNumber — введённый номер не является целым числом.
	ErrInvalidNumber = errors.New("not a valid number")

	// ErrOutOfRange — номер вне диапазона 1..N.
	ErrOutOfRange = errors.New("invalid book number")
)
