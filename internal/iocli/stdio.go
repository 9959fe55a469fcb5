package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout.
// Подсказки пишутся в stderr, чтобы не смешиваться с выводом программы.
type Stdio struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
	prompt io.Writer
}

func NewStdio() IO {
	return &Stdio{
		in:     os.Stdin,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		prompt: os.Stderr,
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	fmt.Fprint(s.prompt, prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без отображения на экране.
// Если stdin не терминал, пароль читается как обычная строка.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if !s.IsTerminal() {
		return s.ReadInput(prompt)
	}

	fmt.Fprint(s.prompt, prompt)
	pwBytes, err := term.ReadPassword(int(s.in.Fd()))
	fmt.Fprintln(s.prompt) // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// IsTerminal сообщает, подключен ли stdin к терминалу
func (s *Stdio) IsTerminal() bool {
	return term.IsTerminal(int(s.in.Fd()))
}
