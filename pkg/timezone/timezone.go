package timezone

import (
	"cmp"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"
)

// Zone describes one time zone at the reference instant.
type Zone struct {
	ID     string `json:"timezone" yaml:"timezone"`
	Name   string `json:"name" yaml:"name"`
	Offset int    `json:"offset" yaml:"offset"`
}

// Option configures All.
type Option func(*options)

type options struct {
	identifiers    []string
	hasIdentifiers bool
	dir            string
	now            time.Time
}

// WithIdentifiers uses the given identifiers instead of reading the system database.
// An empty list yields an empty result.
func WithIdentifiers(ids ...string) Option {
	return func(o *options) {
		o.identifiers = slices.Clone(ids)
		o.hasIdentifiers = true
	}
}

// WithTime sets the instant at which offsets are evaluated.
func WithTime(t time.Time) Option {
	return func(o *options) {
		o.now = t
	}
}

// WithZoneInfoDir reads identifiers and zone data from dir instead of the
// default locations.
func WithZoneInfoDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// All returns every time zone sorted by ascending UTC offset.
func All(opts ...Option) ([]Zone, error) {
	o := &options{now: time.Now()}
	for _, opt := range opts {
		opt(o)
	}

	ids := o.identifiers
	if !o.hasIdentifiers {
		if o.dir == "" {
			o.dir = findZoneInfoDir()
		}
		var err error
		if ids, err = Identifiers(o.dir); err != nil {
			return nil, err
		}
	}

	load := locationLoader(o.dir)
	zones := make([]Zone, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		z, err := newZone(load, id, o.now)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	slices.SortStableFunc(zones, func(a, b Zone) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	return zones, nil
}

// locationLoader loads zones from dir, so offsets come from the same database
// the identifiers were listed from. Without a directory the standard lookup
// (ZONEINFO, system database, embedded tzdata) applies.
func locationLoader(dir string) func(string) (*time.Location, error) {
	if dir == "" {
		return time.LoadLocation
	}
	root := os.DirFS(dir)
	return func(id string) (*time.Location, error) {
		data, err := fs.ReadFile(root, id)
		if err != nil {
			return nil, err
		}
		return time.LoadLocationFromTZData(id, data)
	}
}

func newZone(load func(string) (*time.Location, error), id string, now time.Time) (Zone, error) {
	loc, err := load(id)
	if err != nil {
		return Zone{}, &ZoneError{ID: id, Err: err}
	}

	_, offset := now.In(loc).Zone()
	return Zone{
		ID:     id,
		Name:   FormatName(id, offset),
		Offset: offset,
	}, nil
}

// FormatName builds the display name, e.g. "America/New York (UTC -05:00)".
func FormatName(id string, offset int) string {
	return fmt.Sprintf("%s (UTC %s)", strings.ReplaceAll(id, "_", " "), FormatOffset(offset))
}

// FormatOffset renders an offset in seconds as +HH:MM or -HH:MM.
func FormatOffset(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, offset/3600, offset%3600/60)
}
