package models

import (
	"fmt"
	"strconv"
)

// Book — одна запись каталога в том виде, в каком она лежит в документе.
// Любое поле может отсутствовать: файл правят руками, и отсутствующий ключ
// не должен появляться после загрузки и сохранения.
type Book struct {
	Title  *string
	Author *string
	Genre  *string
	Status *string
	Year   *int

	// raw — значения, которые не легли в типизированные поля
	// (чужой тип, null, неизвестные ключи). Сохраняются как есть.
	raw map[string][]byte
	// opaque — элемент массива, который вообще не объект.
	opaque []byte
}

// NewBook собирает полностью заполненную запись из уже очищенного ввода.
func NewBook(title, author, genre string, status Status, year int) Book {
	s := string(status)
	return Book{
		Title:  &title,
		Author: &author,
		Genre:  &genre,
		Status: &s,
		Year:   &year,
	}
}

// display возвращает значение поля, его сырой текст или заглушку.
func (b Book) display(p *string, key, fallback string) string {
	if p != nil {
		return *p
	}
	if text, ok := b.rawText(key); ok {
		return text
	}
	return fallback
}

// Display* — для вывода списка.
func (b Book) DisplayTitle() string  { return b.display(b.Title, keyTitle, "Unknown Title") }
func (b Book) DisplayAuthor() string { return b.display(b.Author, keyAuthor, "Unknown Author") }
func (b Book) DisplayGenre() string  { return b.display(b.Genre, keyGenre, "Unknown Genre") }
func (b Book) DisplayStatus() string { return b.display(b.Status, keyStatus, "Unknown Status") }

func (b Book) DisplayYear() string {
	if b.Year != nil {
		return strconv.Itoa(*b.Year)
	}
	if text, ok := b.rawText(keyYear); ok {
		return text
	}
	return "Unknown Year"
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// Поиск сравнивает с пустой строкой, если поля нет или у него чужой тип.
func (b Book) MatchTitle() string  { return valueOr(b.Title, "") }
func (b Book) MatchAuthor() string { return valueOr(b.Author, "") }

// StatusValue — статус или "" для статистики.
func (b Book) StatusValue() string { return valueOr(b.Status, "") }

// String — строка для списка и результатов поиска.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%s, %s) - %s",
		b.DisplayTitle(), b.DisplayAuthor(), b.DisplayGenre(), b.DisplayYear(), b.DisplayStatus())
}
