package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Status — на каком этапе читатель с книгой.
type Status string

const (
	StatusUnread    Status = "Unread"
	StatusReading   Status = "Reading"
	StatusCompleted Status = "Completed"
)

// Statuses — известные значения в порядке меню.
var Statuses = []Status{StatusUnread, StatusReading, StatusCompleted}

// ParseStatus обрезает пробелы и приводит к виду "Reading" ("rEADing" -> "Reading").
// ok == false, если результат не входит в известные статусы.
func ParseStatus(raw string) (Status, bool) {
	s := capitalize(strings.TrimSpace(raw))
	for _, known := range Statuses {
		if Status(s) == known {
			return known, true
		}
	}
	return Status(s), false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
