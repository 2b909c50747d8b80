package storage

import (
	"fmt"
	"path"
	"time"
)

// DiskStorage persists the directory documents as JSON files below a root
// folder. Writes go to a temp file first and are renamed into place.
type DiskStorage struct {
	RootFolder string
}

func NewDiskStorage(rootFolder string) *DiskStorage {
	return &DiskStorage{
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}
