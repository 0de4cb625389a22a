// Package input reads menu choices and operation fields line by line.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidInput = "Your input is invalid!"

type LineInput interface {
	// ReadLine prints prompt and returns the next line without its line ending.
	// It returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
	// ReadInt re-prompts until a line holds an integer.
	ReadInt(prompt string) (int, error)
}

type lineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) LineInput {
	return &lineInput{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (l *lineInput) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(l.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (l *lineInput) ReadInt(prompt string) (int, error) {
	for {
		line, err := l.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, nil
		}

		if _, err := fmt.Fprintln(l.out, invalidInput); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}
	}
}

// Field binds a prompt to the string it fills.
type Field struct {
	Prompt string
	Target *string
}

// ReadFields prompts for each field in order and stops at the first read error.
func ReadFields(in LineInput, fields ...Field) error {
	for _, field := range fields {
		line, err := in.ReadLine(field.Prompt)
		if err != nil {
			return err
		}

		*field.Target = strings.TrimSpace(line)
	}

	return nil
}
