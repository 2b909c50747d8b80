package storage

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path"

	"github.com/matst80/slask-directory/pkg/types"
)

const (
	toolsFile      = "tools.json"
	currenciesFile = "currencies.json"
	pricesFile     = "prices.json"
	settingsFile   = "settings.json"

	submissionsFile = "submissions.json.gz"
	removalsFile    = "removal-requests.json.gz"
	contactsFile    = "contact-messages.json.gz"
)

func (d *DiskStorage) LoadJson(output any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(output)
}

func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)
	if err := os.MkdirAll(path.Dir(fileName), 0755); err != nil {
		return err
	}
	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	if err = json.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		os.Remove(tmpFileName)
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) LoadGzippedJson(output any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()
	zr, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer zr.Close()
	return json.NewDecoder(zr).Decode(output)
}

func (d *DiskStorage) SaveGzippedJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)
	if err := os.MkdirAll(path.Dir(fileName), 0755); err != nil {
		return err
	}
	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(file)
	if err = json.NewEncoder(zw).Encode(data); err != nil {
		zw.Close()
		file.Close()
		os.Remove(tmpFileName)
		return err
	}
	if err = zw.Close(); err != nil {
		file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) LoadTools(output *[]*types.Tool) error {
	return d.LoadJson(output, toolsFile)
}

func (d *DiskStorage) SaveTools(tools []*types.Tool) error {
	return d.SaveJson(tools, toolsFile)
}

func (d *DiskStorage) LoadSettings() error {
	types.CurrentSettings.Lock()
	defer types.CurrentSettings.Unlock()
	return d.LoadJson(types.CurrentSettings, settingsFile)
}

func (d *DiskStorage) SaveSettings() error {
	types.CurrentSettings.RLock()
	defer types.CurrentSettings.RUnlock()
	return d.SaveJson(types.CurrentSettings, settingsFile)
}
