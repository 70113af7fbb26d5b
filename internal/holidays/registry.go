// Package holidays keeps named holiday calendars, each an explicit list of
// observed dates, loaded from YAML or CSV files.
package holidays

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"paydate-engine/internal/calendar"
)

var ErrUnknownCalendar = errors.New("unknown holiday calendar")

// Registry maps calendar names to holiday sets. It is not safe for concurrent
// writes; once loaded it is only read.
type Registry struct {
	calendars map[string]calendar.HolidaySet
}

func NewRegistry() *Registry {
	return &Registry{calendars: make(map[string]calendar.HolidaySet)}
}

// Add merges days into the named calendar.
func (r *Registry) Add(name string, days ...calendar.Instant) {
	set, ok := r.calendars[name]
	if !ok {
		set = calendar.NewHolidaySet()
		r.calendars[name] = set
	}
	set.Add(days...)
}

// Get returns the named calendar.
func (r *Registry) Get(name string) (calendar.HolidaySet, error) {
	set, ok := r.calendars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return set, nil
}

// Names returns the calendar names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.calendars))
	for name := range r.calendars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a calendar file, picking the format from its extension. An empty
// path yields an empty registry.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open holiday calendars: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".csv":
		return LoadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported holiday calendar format %q", ext)
	}
}

type yamlFile struct {
	Calendars map[string][]string `yaml:"calendars"`
}

// LoadYAML reads calendars of the form
//
//	calendars:
//	  us-federal-2018:
//	    - 2018-01-01
//	    - 2018-07-04
func LoadYAML(in io.Reader) (*Registry, error) {
	var doc yamlFile
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode holiday calendars: %w", err)
	}

	r := NewRegistry()
	for name, dates := range doc.Calendars {
		set, err := calendar.ParseHolidays(dates)
		if err != nil {
			return nil, fmt.Errorf("calendar %q: %w", name, err)
		}
		r.calendars[name] = set
	}
	return r, nil
}

type csvRow struct {
	Calendar string `csv:"calendar"`
	Date     string `csv:"date"`
}

// LoadCSV reads rows with a "calendar,date" header.
func LoadCSV(in io.Reader) (*Registry, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("decode holiday calendars: %w", err)
	}

	r := NewRegistry()
	for i, row := range rows {
		name := strings.TrimSpace(row.Calendar)
		if name == "" {
			return nil, fmt.Errorf("row %d: missing calendar name", i+1)
		}
		d, err := calendar.Parse(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		r.Add(name, d)
	}
	return r, nil
}
