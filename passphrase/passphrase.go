// Package passphrase reads encryption passphrases from the terminal.
package passphrase

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// zfs rejects passphrases shorter than this.
const MIN_LENGTH = 8

var (
	ErrEmpty    = errors.New("empty passphrase")
	ErrTooShort = fmt.Errorf("passphrase must be at least %d bytes", MIN_LENGTH)
	ErrMismatch = errors.New("passphrases do not match")
)

type Prompter struct {
	In  *os.File
	Out io.Writer
}

// Prompt asks for the passphrase of label on the controlling terminal.
func Prompt(label string) ([]byte, error) {
	prompter := &Prompter{In: os.Stdin, Out: os.Stderr}
	return prompter.Prompt(label)
}

// Prompt reads the passphrase twice without echo if In is a terminal,
// otherwise it reads a single line from In.
func (p *Prompter) Prompt(label string) ([]byte, error) {
	fd := int(p.In.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(p.In).ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		return check(bytes.TrimRight(line, "\r\n"))
	}
	fmt.Fprintf(p.Out, "Enter passphrase for %s: ", label)
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(p.Out)
	if err != nil {
		return nil, err
	}
	if first, err = check(first); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.Out, "Re-enter passphrase for %s: ", label)
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(p.Out)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, ErrMismatch
	}
	return first, nil
}

func check(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmpty
	}
	if len(passphrase) < MIN_LENGTH {
		return nil, ErrTooShort
	}
	return passphrase, nil
}
