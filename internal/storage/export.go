package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/plantctl/internal/sim"
)

type ExportData struct {
	Run     RunMetadata        `json:"run"`
	Days    int                `json:"days"`
	Samples []sim.Sample       `json:"samples"`
	Metrics map[string]float64 `json:"metrics"`
}

func NewExportData(meta RunMetadata, samples []sim.Sample) ExportData {
	return ExportData{
		Run:     meta,
		Days:    meta.Days,
		Samples: samples,
		Metrics: meta.Metrics,
	}
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
