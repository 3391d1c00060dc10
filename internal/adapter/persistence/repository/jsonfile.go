package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// readJSONFile decodes the file at path into v. A missing or empty file is not
// an error: v keeps its zero value so fresh deployments start with an empty
// store.
func readJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// writeJSONFileAtomic writes v as pretty JSON via a temp file and rename, so
// readers never observe a torn document.
func writeJSONFileAtomic(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// dayRange returns the [start, end) bounds of the local calendar day
// containing t in the given location.
func dayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// restaurantLocation resolves the timezone the "today" listing is anchored to.
// Defaults to the shop's local time in Berlin.
func restaurantLocation() *time.Location {
	name := getenvDefault("RESTAURANT_TZ", "Europe/Berlin")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
