package actions

import (
	"fmt"

	"mprxo/botvds/domain"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
)

// ManageCommand is the closed command set of the management CLI. Keeping it a
// typed enumeration makes the unknown-command path explicit instead of an
// open string match.
type ManageCommand int

const (
	Start ManageCommand = iota
	Stop
	Restart
	Status
	Logs
	Update
)

var manageCommandNames = []string{"start", "stop", "restart", "status", "logs", "update"}

func (c ManageCommand) String() string {
	return manageCommandNames[c]
}

func ManageUsage() string {
	return "Usage: telegram-bot {start|stop|restart|status|logs|update}"
}

func ParseManageCommand(name string) (ManageCommand, error) {
	for i, known := range manageCommandNames {
		if name == known {
			return ManageCommand(i), nil
		}
	}

	return 0, fmt.Errorf("Unknown command '%s'.\n%s", name, ManageUsage())
}

// Commands returns the ordered command plan for a management command. For
// 'update', the service restart must come after the dependency reinstall, so
// a half-updated environment is never restarted into.
func (c ManageCommand) Commands(config domain.Config) []domain.Command {
	switch c {
	case Logs:
		return []domain.Command{
			domain.NewCommand([]string{"journalctl", "-u", config.ServiceName, "-f"}),
		}
	case Update:
		return []domain.Command{
			domain.NewUserCommand(config.ServiceUser, config.InstallDir, []string{"git", "pull"}),
			domain.NewUserCommand(config.ServiceUser, config.InstallDir, []string{config.VenvPip(), "install", "-r", config.RequirementsFile()}),
			domain.NewCommand([]string{"systemctl", "restart", config.ServiceName}),
		}
	default:
		return []domain.Command{
			domain.NewCommand([]string{"systemctl", c.String(), config.ServiceName}),
		}
	}
}

// ManageActionHandler handles the action for 'botvds manage' (and therefore
// for the installed wrapper CLI).
func ManageActionHandler(config domain.Config, name string) error {

	command, err := ParseManageCommand(name)
	if err != nil {
		return err
	}

	if command == Update {
		if prompter.YN("Backup the bot state before updating?", true) {
			if err := BackupActionHandler(config, nil, false); err != nil {
				fmt.Printf(" %s Backup failed: %s\n", color.YellowString("!"), err)
				if !prompter.YN("Continue the update without a backup?", false) {
					return err
				}
			}
		}
	}

	for _, cmd := range command.Commands(config) {
		if err := cmd.Execute(); err != nil {
			return err
		}
	}

	return nil
}
