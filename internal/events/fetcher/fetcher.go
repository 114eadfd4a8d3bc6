package fetcher

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LineFetcher реализует Fetcher поверх построчного ввода (обычно stdin).
type LineFetcher struct {
	lines chan string
	errs  chan error
}

// NewLineFetcher запускает горутину чтения r. Она завершается вместе с вводом.
func NewLineFetcher(r io.Reader) *LineFetcher {
	f := &LineFetcher{
		lines: make(chan string),
		errs:  make(chan error, 1),
	}

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			f.lines <- scanner.Text()
		}

		if err := scanner.Err(); err != nil {
			f.errs <- err
			return
		}
		f.errs <- io.EOF
	}()

	return f
}

// Next возвращает следующую непустую команду.
func (f *LineFetcher) Next(ctx context.Context) (Command, error) {
	for {
		select {
		case <-ctx.Done():
			return Command{}, ctx.Err()
		case err := <-f.errs:
			// Повторные вызовы после конца ввода тоже должны получить ошибку.
			f.errs <- err
			return Command{}, err
		case line := <-f.lines:
			if strings.TrimSpace(line) == "" {
				continue
			}
			return ParseCommand(line), nil
		}
	}
}
