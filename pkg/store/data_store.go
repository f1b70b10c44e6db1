package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/borgmon/event-tracker/pkg/logger"
	"github.com/borgmon/event-tracker/pkg/models"
)

// DefaultFileName is the data file created in the app storage root
const DefaultFileName = "event_tracker_data.json"

// ISOLayout is the on-disk format of event targets
const ISOLayout = "2006-01-02T15:04:05"

var (
	ErrNoDataFile  = errors.New("no data file found")
	ErrCorruptData = errors.New("corrupted data file")
)

// Data is the decoded content of the data file
type Data struct {
	Settings models.Settings
	Events   []models.Event // custom events only
	Skipped  int            // malformed event entries that were dropped
}

type fileData struct {
	Settings models.Settings   `json:"settings"`
	Events   []json.RawMessage `json:"events"`
}

type fileEvent struct {
	Label     string `json:"label"`
	TargetISO string `json:"target_dt_iso"`
	Location  string `json:"location,omitempty"`
}

// DataStore persists settings and custom events to a single JSON file
type DataStore struct {
	path string
}

// NewDataStore creates a DataStore backed by path
func NewDataStore(path string) *DataStore {
	return &DataStore{path: path}
}

// Path returns the backing file path
func (ds *DataStore) Path() string {
	return ds.path
}

// Load reads the data file. On any failure it returns usable defaults together with the error.
func (ds *DataStore) Load() (Data, error) {
	log := logger.For("store")
	data := Data{Settings: models.DefaultSettings()}

	raw, err := os.ReadFile(ds.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, fmt.Errorf("%w: %s", ErrNoDataFile, ds.path)
		}
		return data, fmt.Errorf("failed to read data file: %w", err)
	}

	decoded := fileData{Settings: models.DefaultSettings()}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return data, fmt.Errorf("%w: %s: %v", ErrCorruptData, ds.path, err)
	}

	decoded.Settings.Normalize()
	data.Settings = decoded.Settings

	for i, item := range decoded.Events {
		ev, err := decodeEvent(item)
		if err != nil {
			data.Skipped++
			log.Warn().Err(err).Int("index", i).Str("item", string(item)).Msg("skipping invalid event item during load")
			continue
		}
		data.Events = append(data.Events, ev)
	}

	log.Info().
		Str("path", ds.path).
		Int("events", len(data.Events)).
		Int("skipped", data.Skipped).
		Msg("loaded data file")

	return data, nil
}

func decodeEvent(item json.RawMessage) (models.Event, error) {
	var fe fileEvent
	if err := json.Unmarshal(item, &fe); err != nil {
		return models.Event{}, err
	}

	label := strings.TrimSpace(fe.Label)
	if label == "" {
		return models.Event{}, ErrEmptyLabel
	}

	target, err := time.ParseInLocation(ISOLayout, fe.TargetISO, time.Local)
	if err != nil {
		return models.Event{}, fmt.Errorf("bad target_dt_iso for %q: %w", label, err)
	}

	return models.Event{
		Label:    label,
		Target:   target,
		Location: strings.TrimSpace(fe.Location),
		Custom:   true,
	}, nil
}

// Save writes the settings and the custom events among events.
// It returns the number of events written.
func (ds *DataStore) Save(settings models.Settings, events []models.Event) (int, error) {
	out := struct {
		Settings models.Settings `json:"settings"`
		Events   []fileEvent     `json:"events"`
	}{
		Settings: settings,
		Events:   []fileEvent{},
	}

	for _, ev := range events {
		if !ev.Custom {
			continue
		}
		out.Events = append(out.Events, fileEvent{
			Label:     ev.Label,
			TargetISO: ev.Target.In(time.Local).Format(ISOLayout),
			Location:  ev.Location,
		})
	}

	raw, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode data: %w", err)
	}

	if err := writeFileAtomic(ds.path, raw); err != nil {
		return 0, err
	}

	logger.For("store").Info().Str("path", ds.path).Int("events", len(out.Events)).Msg("saved data file")
	return len(out.Events), nil
}

// writeFileAtomic replaces path with data via a temp file in the same directory
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".event_tracker_*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
