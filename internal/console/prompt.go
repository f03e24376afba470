package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bookwarehouse/internal/inventory"
)

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prints prompt and returns one line without its newline. A last
// line without a trailing newline is still returned; io.EOF is reported only
// when nothing was read.
func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		s.printf("\n")
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompt asks for a value and falls back to defaultVal on an empty answer.
func (s *Session) prompt(label, defaultVal string) (string, error) {
	var p string
	if defaultVal != "" {
		p = fmt.Sprintf("%s [%s]: ", label, s.paint(styleDefault, defaultVal))
	} else {
		p = fmt.Sprintf("%s: ", label)
	}

	line, err := s.readLine(p)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal, nil
	}
	return line, nil
}

// ask re-prompts until parse accepts the answer.
func ask[T any](s *Session, label, defaultVal string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.prompt(label, defaultVal)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.printf("  %s\n", s.paint(styleError, describe(err)))
	}
}

func text(field string) func(string) (string, error) {
	return func(s string) (string, error) {
		return inventory.ParseText(field, s)
	}
}

// confirm asks a y/n question until it gets one of the two.
func (s *Session) confirm(question string) (bool, error) {
	for {
		line, err := s.readLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.printf("  Please answer y or n.\n")
	}
}

func describe(err error) string {
	var verrs inventory.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, v := range verrs {
			msgs = append(msgs, v.Message)
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
