package actions

import (
	"strings"
	"testing"

	"mprxo/botvds/domain"
)

func testConfig() domain.Config {
	return domain.Config{
		ServiceName: "telegram-bot",
		ServiceUser: "botuser",
		InstallDir:  "/opt/telegram-bot",
		Entrypoint:  "main.py",
		SSHProfile:  "OpenSSH",
	}
}

func TestParseManageCommand_KnownCommands(t *testing.T) {
	for _, name := range []string{"start", "stop", "restart", "status", "logs", "update"} {
		cmd, err := ParseManageCommand(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if cmd.String() != name {
			t.Fatalf("parsed %q as %q", name, cmd.String())
		}
	}
}

func TestParseManageCommand_UnknownCommand(t *testing.T) {
	_, err := ParseManageCommand("reboot")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Usage:") {
		t.Fatalf("error does not carry usage: %v", err)
	}
}

func TestManageCommands_LifecycleMapsToSystemctl(t *testing.T) {
	for _, command := range []ManageCommand{Start, Stop, Restart, Status} {
		cmds := command.Commands(testConfig())
		if len(cmds) != 1 {
			t.Fatalf("%s: %v", command, cmds)
		}
		want := "systemctl " + command.String() + " telegram-bot"
		if cmds[0].String() != want {
			t.Fatalf("%s mapped to %q", command, cmds[0].String())
		}
	}
}

func TestManageCommands_LogsStreamFromJournal(t *testing.T) {
	cmds := Logs.Commands(testConfig())
	if len(cmds) != 1 {
		t.Fatalf("cmds=%v", cmds)
	}
	if cmds[0].String() != "journalctl -u telegram-bot -f" {
		t.Fatalf("logs mapped to %q", cmds[0].String())
	}
}

func TestManageCommands_UpdateOrder(t *testing.T) {
	cmds := Update.Commands(testConfig())

	pull, reinstall, restart := -1, -1, -1
	for i, cmd := range cmds {
		s := cmd.String()
		if strings.Contains(s, "git pull") {
			pull = i
		}
		if strings.Contains(s, "pip install -r") {
			reinstall = i
		}
		if strings.Contains(s, "systemctl restart") {
			restart = i
		}
	}

	if pull == -1 || reinstall == -1 || restart == -1 {
		t.Fatalf("incomplete update plan: %v", cmds)
	}
	if !(pull < reinstall && reinstall < restart) {
		t.Fatalf("update order pull=%d reinstall=%d restart=%d", pull, reinstall, restart)
	}
}

func TestManageCommands_UpdateRunsAsServiceAccount(t *testing.T) {
	cmds := Update.Commands(testConfig())

	// source refresh and dependency reinstall must not run as root
	for _, i := range []int{0, 1} {
		if cmds[i].Name != "su" || !strings.Contains(cmds[i].String(), "botuser") {
			t.Fatalf("command %d does not run as the service account: %q", i, cmds[i].String())
		}
	}
}
