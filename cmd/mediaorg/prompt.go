package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediaorg/internal/config"
)

var (
	errSourceRequired       = errors.New("source directory required: pass --source or set paths.source")
	errDestinationRequired  = errors.New("destination directory required: pass --destination or set paths.destination")
	errConfirmationRequired = errors.New("moving files needs confirmation: rerun with --yes or --what-if")
)

// prompter asks for missing values. Prompts are only issued when stdin is a
// terminal; otherwise every method fails fast with a hint naming the flag.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{
		in:          bufio.NewReader(in),
		out:         cmd.OutOrStdout(),
		interactive: isTerminal(in),
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// sourceDir returns current when set, otherwise asks until the answer names
// an existing directory.
func (p *prompter) sourceDir(current string) (string, error) {
	if current != "" {
		return current, nil
	}
	if !p.interactive {
		return "", errSourceRequired
	}
	for {
		answer, err := p.readLine("Enter the SOURCE directory: ")
		if err != nil {
			return "", err
		}
		path, err := config.ExpandPath(answer)
		if err == nil && answer != "" {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return path, nil
			}
		}
		fmt.Fprintln(p.out, "Source directory not found. Please try again.")
	}
}

// destinationDir returns current when set, otherwise asks until the answer is
// an existing directory or a missing path the user agrees to create.
func (p *prompter) destinationDir(current string) (string, error) {
	if current != "" {
		return current, nil
	}
	if !p.interactive {
		return "", errDestinationRequired
	}
	for {
		answer, err := p.readLine("Enter the DESTINATION directory: ")
		if err != nil {
			return "", err
		}
		if answer == "" {
			continue
		}
		path, err := config.ExpandPath(answer)
		if err != nil {
			fmt.Fprintf(p.out, "Cannot use %q: %v\n", answer, err)
			continue
		}
		info, statErr := os.Stat(path)
		switch {
		case statErr == nil && !info.IsDir():
			fmt.Fprintln(p.out, "Destination path exists but is not a directory. Please provide a valid directory.")
		case statErr == nil:
			return path, nil
		default:
			create, err := p.confirm(fmt.Sprintf("Destination directory %q does not exist. Create it? (yes/no): ", path))
			if err != nil {
				return "", err
			}
			if create {
				return path, nil
			}
			fmt.Fprintln(p.out, "Please provide an existing or valid new destination directory.")
		}
	}
}

// confirm asks a yes/no question. Only "yes" or "y" count as agreement.
func (p *prompter) confirm(question string) (bool, error) {
	if !p.interactive {
		return false, errConfirmationRequired
	}
	answer, err := p.readLine(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	default:
		return false, nil
	}
}
