package store

import (
	"encoding/csv"
	"errors"
	"os"
)

// Storage is the on-disk representation of the bookmark collection: one
// record per line, fields separated by a single space, fields containing
// spaces or double quotes wrapped in double quotes with inner quotes doubled.
type Storage struct {
	Path string
}

// Load reads every record from the storage file as a raw field tuple. A
// missing file is an empty collection, not an error. Field arity is not
// checked here; the caller rejects tuples it cannot turn into a Bookmark.
func (s Storage) Load() ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Join(errors.New("unable to open storage file "+s.Path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ' '
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Join(errors.New("unable to read storage file "+s.Path), err)
	}
	return records, nil
}

// Save truncates the storage file and rewrites every bookmark in the given
// order. The rewrite is not atomic; a crash mid-write can leave a truncated
// file.
func (s Storage) Save(bookmarks []Bookmark) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return errors.Join(errors.New("unable to write storage file "+s.Path), err)
	}

	w := csv.NewWriter(f)
	w.Comma = ' '
	for _, b := range bookmarks {
		if err := w.Write([]string{b.Code, b.URL, b.Description}); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
