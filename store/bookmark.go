package store

import "fmt"

// Bookmark is a single saved link, identified by its short code.
type Bookmark struct {
	Code        string
	URL         string
	Description string
}

func (b Bookmark) String() string {
	return fmt.Sprintf("[%s] %s - %s", b.Code, b.URL, b.Description)
}

// DuplicateCodeError is returned by Add when the code is already taken and
// force was not given.
type DuplicateCodeError struct {
	Existing Bookmark
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("There is a bookmark with that code:\n%s\n\nTo override it add option -f", e.Existing)
}

// UnknownCodeError is returned when a command names a code that is not in
// the collection.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("There is no bookmark with code %s", e.Code)
}
