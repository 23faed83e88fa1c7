package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/rs/xid"

	"github.com/san-kum/plantctl/internal/config"
	"github.com/san-kum/plantctl/internal/sim"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
	configFile   = "config.yaml"
)

var seriesHeader = []string{"day", "firm", "wage", "workers", "target", "profit", "revenue", "cost"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Days       int                `json:"days"`
	Firms      int                `json:"firms"`
	Targeter   string             `json:"targeter"`
	Maximizer  string             `json:"maximizer"`
	Algorithm  string             `json:"algorithm"`
	Decorators []string           `json:"decorators,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

// NewMetadata describes a finished run of cfg.
func NewMetadata(name string, cfg *config.Config, result *sim.Result) RunMetadata {
	return RunMetadata{
		Name:       name,
		Timestamp:  time.Now(),
		Seed:       cfg.Scenario.Seed,
		Days:       result.Days,
		Firms:      cfg.Scenario.Firms,
		Targeter:   cfg.Control.Targeter,
		Maximizer:  cfg.Control.Maximizer,
		Algorithm:  cfg.Control.Algorithm,
		Decorators: cfg.Control.Decorators,
		Metrics:    result.Metrics,
	}
}

// Save writes the run under a fresh id and returns it.
func (s *Store) Save(name string, cfg *config.Config, result *sim.Result) (string, error) {
	meta := NewMetadata(name, cfg, result)
	meta.ID = fmt.Sprintf("%s_%s", name, xid.New().String())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := config.Save(filepath.Join(runDir, configFile), cfg); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, seriesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result.Samples); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// WriteCSV writes samples with a header row.
func WriteCSV(out io.Writer, samples []sim.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(seriesHeader); err != nil {
		return err
	}
	for _, x := range samples {
		row := []string{
			strconv.Itoa(x.Day),
			x.Firm,
			strconv.FormatInt(x.Wage, 10),
			strconv.Itoa(x.Workers),
			strconv.Itoa(x.Target),
			strconv.FormatFloat(x.Profit, 'f', 6, 64),
			strconv.FormatFloat(x.Revenue, 'f', 6, 64),
			strconv.FormatFloat(x.Cost, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadConfig returns the config the run was made with.
func (s *Store) LoadConfig(runID string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, runID, configFile))
}

// LoadSeries reads the samples of a run. Malformed rows are skipped.
func (s *Store) LoadSeries(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		sample, err := parseRow(record)
		if err != nil {
			continue
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func parseRow(record []string) (sim.Sample, error) {
	if len(record) != len(seriesHeader) {
		return sim.Sample{}, fmt.Errorf("expected %d fields, got %d", len(seriesHeader), len(record))
	}
	var (
		s   sim.Sample
		err error
	)
	ints := []*int{&s.Day, nil, nil, &s.Workers, &s.Target}
	for i, dst := range ints {
		if dst == nil {
			continue
		}
		if *dst, err = strconv.Atoi(record[i]); err != nil {
			return s, err
		}
	}
	s.Firm = record[1]
	if s.Wage, err = strconv.ParseInt(record[2], 10, 64); err != nil {
		return s, err
	}
	floats := []*float64{&s.Profit, &s.Revenue, &s.Cost}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(record[5+i], 64); err != nil {
			return s, err
		}
	}
	return s, nil
}
