package main

import (
	"fmt"
	"os"

	"mprxo/botvds/actions"
	"mprxo/botvds/config"

	"github.com/jawher/mow.cli"
)

func main() {

	app := cli.App("botvds", "Provision a VDS host to run a Telegram bot as a systemd service")

	app.Version("v version", "botvds 1 (build 2)")

	app.Before = func() {
		// Parse and check config
		ParseAndCheckConfig()
	}

	app.Command("provision", "Provision this host: packages, service account, venv, service unit, firewall, management CLI", func(cmd *cli.Cmd) {

		cmd.Spec = "[--src] [--yes]"
		src := cmd.StringOpt("src", ".", "Directory holding the bot source tree to deploy")
		yes := cmd.BoolOpt("y yes", false, "Do not ask for confirmation before touching the host")

		cmd.Action = func() {

			cfg := config.Get()
			cfg.SourceDir = *src

			if err := actions.ProvisionActionHandler(cfg, *yes); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("manage", "Manage the deployed bot service (start|stop|restart|status|logs|update)", func(cmd *cli.Cmd) {

		cmd.Spec = "CMD"
		name := cmd.StringArg("CMD", "", "One of: start, stop, restart, status, logs, update")

		cmd.Action = func() {
			if err := actions.ManageActionHandler(config.Get(), *name); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("backup", "Backup the bot state (.env, database, logs)", func(cmd *cli.Cmd) {

		cmd.Spec = "[--output] [--encrypt]"
		output := cmd.StringOpt("o output", "", "Filename of the backup archive")
		encrypt := cmd.BoolOpt("e encrypt", false, "Seal the archive with a passphrase")

		cmd.Action = func() {
			if err := actions.BackupActionHandler(config.Get(), output, *encrypt); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Command("restore", "Restore a backup archive into the install directory", func(cmd *cli.Cmd) {

		cmd.Spec = "FILE [--encrypt]"
		file := cmd.StringArg("FILE", "", "The backup archive to restore")
		encrypt := cmd.BoolOpt("e encrypt", false, "The archive is passphrase-sealed")

		cmd.Action = func() {
			if err := actions.RestoreActionHandler(config.Get(), *file, *encrypt); err != nil {
				fmt.Println(err)
				cli.Exit(1)
			}
		}
	})

	app.Run(os.Args)
}

func ParseAndCheckConfig() {
	err := config.Check()
	if err != nil {
		os.Exit(1)
		return
	}
}
