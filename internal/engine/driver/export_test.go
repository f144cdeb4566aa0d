package driver

import "time"

// SetNow replaces the clock used for install records.
// This is exported for testing purposes only.
func (d *Driver) SetNow(now func() time.Time) {
	d.now = now
}

// SetRemoveAll replaces the function that deletes build directories.
// This is exported for testing purposes only.
func (d *Driver) SetRemoveAll(removeAll func(string) error) {
	d.removeAll = removeAll
}
