package storage

import (
	"errors"
	"io/fs"

	"github.com/matst80/slask-directory/pkg/types"
)

func appendGzipped[V any](d *DiskStorage, name string, entry V) error {
	var entries []V
	if err := d.LoadGzippedJson(&entries, name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	entries = append(entries, entry)
	return d.SaveGzippedJson(entries, name)
}

func (d *DiskStorage) AppendSubmission(submission *types.ToolSubmission) error {
	return appendGzipped(d, submissionsFile, submission)
}

func (d *DiskStorage) LoadSubmissions(output *[]*types.ToolSubmission) error {
	return d.LoadGzippedJson(output, submissionsFile)
}

func (d *DiskStorage) AppendRemovalRequest(request *types.RemovalRequest) error {
	return appendGzipped(d, removalsFile, request)
}

func (d *DiskStorage) LoadRemovalRequests(output *[]*types.RemovalRequest) error {
	return d.LoadGzippedJson(output, removalsFile)
}

func (d *DiskStorage) AppendContactMessage(message *types.ContactMessage) error {
	return appendGzipped(d, contactsFile, message)
}

func (d *DiskStorage) LoadContactMessages(output *[]*types.ContactMessage) error {
	return d.LoadGzippedJson(output, contactsFile)
}

func (d *DiskStorage) LoadCurrencies(output *[]*types.Currency) error {
	return d.LoadJson(output, currenciesFile)
}

func (d *DiskStorage) SaveCurrencies(currencies []*types.Currency) error {
	return d.SaveJson(currencies, currenciesFile)
}

func (d *DiskStorage) LoadPrices(output *[]*types.PlanPrice) error {
	return d.LoadJson(output, pricesFile)
}

func (d *DiskStorage) SavePrices(prices []*types.PlanPrice) error {
	return d.SaveJson(prices, pricesFile)
}
