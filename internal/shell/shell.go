// Package shell — интерактивное меню поверх операций библиотеки.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"library_manager/internal/library"
	"library_manager/internal/models"
)

const (
	choiceAdd    = "1"
	choiceList   = "2"
	choiceSearch = "3"
	choiceDelete = "4"
	choiceStats  = "5"
	choiceExit   = "6"
)

type Shell struct {
	lib *library.Library
	in  *bufio.Reader
	out io.Writer
}

func New(lib *library.Library, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		lib: lib,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run — главный цикл меню. Заканчивается на пункте 6 или при конце ввода.
// Наружу возвращаются только ошибки записи хранилища.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		switch strings.TrimSpace(choice) {
		case choiceAdd:
			err = s.add(ctx)
		case choiceList:
			s.list(ctx)
		case choiceSearch:
			err = s.search(ctx)
		case choiceDelete:
			err = s.delete(ctx)
		case choiceStats:
			s.stats(ctx)
		case choiceExit:
			fmt.Fprint(s.out, "\n Goodbye! Happy Reading!\n\n")
			return nil
		default:
			fmt.Fprint(s.out, "\n Invalid choice! Please enter a number between 1-6.\n\n")
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "\n Personal Library Manager")
	fmt.Fprintln(s.out, "1 Add Book")
	fmt.Fprintln(s.out, "2 View Books")
	fmt.Fprintln(s.out, "3 Search Book")
	fmt.Fprintln(s.out, "4 Delete Book")
	fmt.Fprintln(s.out, "5 View Statistics")
	fmt.Fprintln(s.out, "6 Exit")
}

// prompt печатает приглашение и читает одну строку без перевода строки.
// Последняя строка без '\n' тоже возвращается.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) add(ctx context.Context) error {
	var in library.Input
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter book title: ", &in.Title},
		{"Enter author: ", &in.Author},
		{"Enter genre: ", &in.Genre},
		{"Enter status (Unread/Reading/Completed): ", &in.Status},
	}
	for _, f := range fields {
		v, err := s.prompt(f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	// Предупреждения печатаются до сохранения, как только значение введено.
	if _, ok := models.ParseStatus(in.Status); !ok {
		fmt.Fprintln(s.out, "Invalid status! Defaulting to 'Unread'.")
	}

	year, err := s.prompt("Enter publication year: ")
	if err != nil {
		return err
	}
	in.Year = year
	if _, ok := library.ParseYear(in.Year); !ok {
		fmt.Fprintln(s.out, "Invalid year! Setting default year to 0.")
	}

	if _, err := s.lib.Add(ctx, in); err != nil {
		return err
	}

	fmt.Fprint(s.out, "\n Book added successfully!\n\n")
	return nil
}

func (s *Shell) list(ctx context.Context) {
	books := s.lib.List(ctx)
	if len(books) == 0 {
		fmt.Fprint(s.out, "\n No books in the library!\n\n")
		return
	}

	fmt.Fprintln(s.out, "\n Your Books:")
	for i, book := range books {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, book)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) search(ctx context.Context) error {
	query, err := s.prompt("Enter book title or author to search: ")
	if err != nil {
		return err
	}

	results := s.lib.Search(ctx, query)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "\n No books found!")
		return nil
	}

	fmt.Fprintln(s.out, "\n Search Results:")
	for _, book := range results {
		fmt.Fprintf(s.out, "- %s\n", book)
	}
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	if len(s.lib.List(ctx)) == 0 {
		fmt.Fprint(s.out, "\n No books to delete!\n\n")
		return nil
	}
	s.list(ctx)

	raw, err := s.prompt("Enter the book number to delete: ")
	if err != nil {
		return err
	}

	removed, err := s.lib.Delete(ctx, raw)
	switch {
	case errors.Is(err, library.ErrInvalidNumber):
		fmt.Fprint(s.out, "\n Please enter a valid number!\n\n")
	case errors.Is(err, library.ErrOutOfRange):
		fmt.Fprint(s.out, "\n Invalid book number!\n\n")
	case errors.Is(err, library.ErrNoBooks):
		fmt.Fprint(s.out, "\n No books to delete!\n\n")
	case err != nil:
		return err
	default:
		fmt.Fprintf(s.out, "\n '%s' deleted successfully!\n\n", removed.DisplayTitle())
	}
	return nil
}

func (s *Shell) stats(ctx context.Context) {
	st := s.lib.Stats(ctx)

	fmt.Fprintln(s.out, "\n Library Statistics")
	fmt.Fprintf(s.out, " Total Books: %d\n", st.Total)
	fmt.Fprintf(s.out, " Completed Books: %d\n", st.Completed)
	fmt.Fprintf(s.out, " Currently Reading: %d\n", st.Reading)
	fmt.Fprintf(s.out, " Unread Books: %d\n\n", st.Unread)
}
