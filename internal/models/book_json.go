package models

import (
	"bytes"
	"sort"

	json "github.com/goccy/go-json"
)

const (
	keyTitle  = "title"
	keyAuthor = "author"
	keyGenre  = "genre"
	keyStatus = "status"
	keyYear   = "year"
)

// knownKeys задаёт порядок полей в документе.
var knownKeys = []string{keyTitle, keyAuthor, keyGenre, keyStatus, keyYear}

var jsonNull = []byte("null")

// UnmarshalJSON разбирает запись мягко: поле с неожиданным типом не ломает
// весь документ, а остаётся в raw и возвращается в файл без изменений.
// Ошибку возвращает только невалидный JSON.
func (b *Book) UnmarshalJSON(data []byte) error {
	*b = Book{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		if !json.Valid(data) {
			return err
		}
		b.opaque = append([]byte(nil), bytes.TrimSpace(data)...)
		return nil
	}

	for key, value := range fields {
		value = bytes.TrimSpace(value)
		if !bytes.Equal(value, jsonNull) && b.setKnown(key, value) {
			continue
		}
		if b.raw == nil {
			b.raw = make(map[string][]byte)
		}
		b.raw[key] = append([]byte(nil), value...)
	}
	return nil
}

func (b *Book) setKnown(key string, value []byte) bool {
	switch key {
	case keyTitle:
		b.Title = decodeString(value)
		return b.Title != nil
	case keyAuthor:
		b.Author = decodeString(value)
		return b.Author != nil
	case keyGenre:
		b.Genre = decodeString(value)
		return b.Genre != nil
	case keyStatus:
		b.Status = decodeString(value)
		return b.Status != nil
	case keyYear:
		var year int
		if json.Unmarshal(value, &year) != nil {
			return false
		}
		b.Year = &year
		return true
	}
	return false
}

func decodeString(value []byte) *string {
	var s string
	if json.Unmarshal(value, &s) != nil {
		return nil
	}
	return &s
}

// MarshalJSON пишет известные поля в постоянном порядке, затем остальные
// ключи по алфавиту.
func (b Book) MarshalJSON() ([]byte, error) {
	if b.opaque != nil {
		return b.opaque, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value []byte) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(value)
	}

	typed := map[string]any{}
	if b.Title != nil {
		typed[keyTitle] = *b.Title
	}
	if b.Author != nil {
		typed[keyAuthor] = *b.Author
	}
	if b.Genre != nil {
		typed[keyGenre] = *b.Genre
	}
	if b.Status != nil {
		typed[keyStatus] = *b.Status
	}
	if b.Year != nil {
		typed[keyYear] = *b.Year
	}

	for _, key := range knownKeys {
		if v, ok := typed[key]; ok {
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			write(key, data)
		} else if raw, ok := b.raw[key]; ok {
			write(key, raw)
		}
	}

	extra := make([]string, 0, len(b.raw))
	for key := range b.raw {
		if !isKnownKey(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		write(key, b.raw[key])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// rawText — текст значения с чужим типом: строка без кавычек, остальное как в файле.
// null считается отсутствующим значением.
func (b Book) rawText(key string) (string, bool) {
	value, ok := b.raw[key]
	if !ok || bytes.Equal(value, jsonNull) {
		return "", false
	}
	var s string
	if json.Unmarshal(value, &s) == nil {
		return s, true
	}
	return string(value), true
}
