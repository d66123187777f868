package store

import "fmt"

// Collection is the in-memory bookmark set: a code to bookmark map with
// stable insertion order. It is fully loaded from storage before any command
// runs and fully rewritten after any mutation. Two processes racing on the
// same file are not coordinated; the later writer wins.
type Collection struct {
	storage Storage
	byCode  map[string]Bookmark
	order   []string
}

// Open loads the whole storage file at path into a Collection.
func Open(path string) (*Collection, error) {
	c := &Collection{
		storage: Storage{Path: path},
		byCode:  map[string]Bookmark{},
	}

	records, err := c.storage.Load()
	if err != nil {
		return nil, err
	}
	for i, fields := range records {
		if len(fields) != 3 {
			return nil, fmt.Errorf("storage file %s line %d: expected 3 fields, got %d", path, i+1, len(fields))
		}
		c.Put(Bookmark{Code: fields[0], URL: fields[1], Description: fields[2]})
	}
	return c, nil
}

// Len reports the number of bookmarks.
func (c *Collection) Len() int { return len(c.order) }

// Get looks a bookmark up by code.
func (c *Collection) Get(code string) (Bookmark, bool) {
	b, ok := c.byCode[code]
	return b, ok
}

// All returns the bookmarks in insertion order.
func (c *Collection) All() []Bookmark {
	bookmarks := make([]Bookmark, 0, len(c.order))
	for _, code := range c.order {
		bookmarks = append(bookmarks, c.byCode[code])
	}
	return bookmarks
}

// Put inserts or overwrites b in memory without persisting. Overwriting
// keeps the entry's original position.
func (c *Collection) Put(b Bookmark) {
	if _, ok := c.byCode[b.Code]; !ok {
		c.order = append(c.order, b.Code)
	}
	c.byCode[b.Code] = b
}

// Flush rewrites the storage file from the current in-memory state.
func (c *Collection) Flush() error {
	return c.storage.Save(c.All())
}

// Add inserts b and rewrites the storage file. Without force an existing
// code fails with DuplicateCodeError and nothing is written.
func (c *Collection) Add(b Bookmark, force bool) error {
	if existing, ok := c.byCode[b.Code]; ok && !force {
		return &DuplicateCodeError{Existing: existing}
	}
	c.Put(b)
	return c.Flush()
}

// Remove deletes the bookmark for code and rewrites the storage file. An
// absent code fails with UnknownCodeError and nothing is written.
func (c *Collection) Remove(code string) error {
	if _, ok := c.byCode[code]; !ok {
		return &UnknownCodeError{Code: code}
	}
	delete(c.byCode, code)
	for i, o := range c.order {
		if o == code {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return c.Flush()
}
