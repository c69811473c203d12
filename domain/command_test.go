package domain

import "testing"

func TestNewCommand_SplitsNameAndArgs(t *testing.T) {
	cmd := NewCommand([]string{"systemctl", "restart", "telegram-bot"})

	if cmd.Name != "systemctl" {
		t.Fatalf("name=%q", cmd.Name)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "restart" || cmd.Args[1] != "telegram-bot" {
		t.Fatalf("args=%v", cmd.Args)
	}
}

func TestNewCommand_SingleElement(t *testing.T) {
	cmd := NewCommand([]string{"ls"})

	if cmd.Name != "ls" || len(cmd.Args) != 0 {
		t.Fatalf("cmd=%v", cmd)
	}
}

func TestNewUserCommand_ForcesShellAndUser(t *testing.T) {
	cmd := NewUserCommand("botuser", "", []string{"git", "pull"})

	if cmd.Name != "su" {
		t.Fatalf("name=%q", cmd.Name)
	}
	want := []string{"-s", "/bin/sh", "botuser", "-c", "git pull"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("args=%v", cmd.Args)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Fatalf("args=%v", cmd.Args)
		}
	}
}

func TestNewUserCommand_ChangesDirectory(t *testing.T) {
	cmd := NewUserCommand("botuser", "/opt/telegram-bot", []string{"git", "pull"})

	shellCmd := cmd.Args[len(cmd.Args)-1]
	if shellCmd != "cd /opt/telegram-bot && git pull" {
		t.Fatalf("shell command=%q", shellCmd)
	}
}

func TestCommand_String(t *testing.T) {
	cmd := NewCommand([]string{"ufw", "--force", "enable"})

	if cmd.String() != "ufw --force enable" {
		t.Fatalf("string=%q", cmd.String())
	}
}
