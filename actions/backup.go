package actions

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"mprxo/botvds/domain"
	"mprxo/botvds/utils"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
	"github.com/jhoonb/archivex"
)

// BackupActionHandler handles the action for 'botvds backup': archive the bot
// state (env file, sqlite database, logs) into a timestamped tar.gz,
// optionally sealed with a passphrase.
func BackupActionHandler(config domain.Config, outputOpt *string, encrypt bool) error {

	// prepare the directory to store the backup
	backupDir := ".botvds_backup"
	err := os.Mkdir(backupDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("Unable to create a backup directory: %s\n", err)
	}
	defer os.RemoveAll(backupDir)

	if err := os.MkdirAll(path.Join(backupDir, "backup"), os.ModePerm); err != nil {
		return err
	}

	stateFiles := []string{config.EnvFile(), config.DatabaseFile()}
	for _, file := range stateFiles {
		if _, err := os.Stat(file); err != nil {
			// bot.db and .env only appear once the bot has been configured
			// and started, a fresh install has neither
			fmt.Printf(" → %s not found, skipped\n", file)
			continue
		}

		target := path.Join(backupDir, "backup", "state", filepath.Base(file))
		os.MkdirAll(filepath.Dir(target), os.ModePerm)
		if err := utils.CopyFileContents(file, target); err != nil {
			return fmt.Errorf("Unable to backup %s: %s\n", file, err)
		}
	}

	if _, err := os.Stat(config.LogsDir()); err == nil {
		logsDir := path.Join(backupDir, "backup", "logs")
		if err := utils.CopyTree(config.LogsDir(), logsDir, nil); err != nil {
			return fmt.Errorf("Unable to backup the logs: %s\n", err)
		}
	}

	tar := new(archivex.TarFile)
	tar.Create(path.Join(backupDir, "backup_archive.tar.gz"))
	tar.AddAll(path.Join(backupDir, "backup"), false)
	tar.Close()

	// save the archive with the right name
	archiveFilename := ""
	if outputOpt != nil && *outputOpt != "" {
		archiveFilename = *outputOpt
	} else {
		now := time.Now().UTC()
		year, month, day := now.Date()
		hour, minutes, seconds := now.Clock()
		archiveFilename = fmt.Sprintf("backup-%d%02d%02d_%02d%02d%02d.tar.gz", year, month, day, hour, minutes, seconds)
	}

	archive := path.Join(backupDir, "backup_archive.tar.gz")

	if encrypt {
		passphrase := prompter.Password("Passphrase for the backup")
		if passphrase == "" {
			return fmt.Errorf("An empty passphrase is not allowed for an encrypted backup\n")
		}

		archiveFilename += ".enc"
		if err := utils.EncryptFile(archive, archiveFilename, passphrase); err != nil {
			return fmt.Errorf("Unable to encrypt the backup file: %s\n", err)
		}
	} else {
		if err := os.Rename(archive, archiveFilename); err != nil {
			// rename fails across filesystems, fall back to a plain copy
			if err := utils.CopyFileContents(archive, archiveFilename); err != nil {
				return fmt.Errorf("Unable to create the backup file: %s\n", err)
			}
		}
	}

	fmt.Printf("\n %s Done: %s\n", color.GreenString("✓"), archiveFilename)
	return nil
}
