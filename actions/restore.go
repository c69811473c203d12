package actions

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mprxo/botvds/domain"
	"mprxo/botvds/utils"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
)

// RestoreActionHandler handles the action for 'botvds restore': put the state
// of a backup archive back into the install directory.
func RestoreActionHandler(config domain.Config, file string, encrypted bool) error {

	archive := file

	if encrypted {
		passphrase := prompter.Password("Passphrase for the backup")

		tmp, err := ioutil.TempFile("", "botvdsrestore")
		if err != nil {
			return err
		}
		tmp.Close()
		defer os.Remove(tmp.Name())

		if err := utils.DecryptFile(file, tmp.Name(), passphrase); err != nil {
			return err
		}
		archive = tmp.Name()
	}

	if err := untar(config, archive); err != nil {
		return err
	}

	// restored files must belong to the account the bot runs as
	if os.Geteuid() == 0 {
		owner := fmt.Sprintf("%s:%s", config.ServiceUser, config.ServiceUser)
		cmd := domain.NewCommand([]string{"chown", "-R", owner, config.InstallDir})
		if err := cmd.Execute(); err != nil {
			return err
		}
	}

	fmt.Printf("\n %s Done\n", color.GreenString("✓"))
	return nil
}

func untar(config domain.Config, tarball string) error {

	// open the tarball
	reader, err := os.Open(tarball)
	if err != nil {
		return err
	}
	defer reader.Close()

	// gunzip
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	// read the tarball
	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		info := header.FileInfo()

		// state files go back to the install dir root, logs under logs/
		if strings.HasPrefix(header.Name, "state/") {
			dest := path.Join(config.InstallDir, strings.Replace(header.Name, "state/", "", 1))

			fmt.Printf(" → Restoring %s\n", dest)

			if err := copyFile(dest, tarReader, info); err != nil {
				return err
			}
		}

		if strings.HasPrefix(header.Name, "logs/") {
			dest := path.Join(config.LogsDir(), strings.Replace(header.Name, "logs/", "", 1))

			fmt.Printf(" → Restoring %s\n", dest)

			if err := copyFile(dest, tarReader, info); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(dest string, source io.Reader, sourceInfo os.FileInfo) error {

	dir := dest
	if !sourceInfo.IsDir() {
		dir = filepath.Dir(dest)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if sourceInfo.IsDir() {
		return nil
	}

	file, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, sourceInfo.Mode())
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, source)
	if err != nil {
		return err
	}

	return nil
}
