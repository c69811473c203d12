package domain

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s", c.Name, strings.Join(c.Args, " "))
}

func (c Command) Execute() error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	fmt.Printf("Executing: %s\n", c)

	return cmd.Run()
}

// GetResult runs the command and returns its trimmed stdout instead of
// streaming it to the terminal.
func (c Command) GetResult() (string, error) {
	output, err := exec.Command(c.Name, c.Args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(output)), nil
}

func (c Command) ExecuteWithStdin(reader io.Reader) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = reader

	return cmd.Run()
}

func NewCommand(list []string) Command {
	var name string
	var args []string

	if len(list) > 1 {
		name = list[0]
		args = list[1:]
	} else {
		name = list[0]
		args = []string{}
	}

	return Command{Name: name, Args: args}
}

// NewUserCommand wraps a command so that it runs as the given unprivileged
// user, optionally after changing to the given directory. The service account
// has a nologin shell, so a usable shell is forced explicitly.
func NewUserCommand(user string, dir string, list []string) Command {
	shellCmd := strings.Join(list, " ")
	if dir != "" {
		shellCmd = fmt.Sprintf("cd %s && %s", dir, shellCmd)
	}

	return Command{Name: "su", Args: []string{"-s", "/bin/sh", user, "-c", shellCmd}}
}
