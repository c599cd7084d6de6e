package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/lifeterm/internal/sim"
)

type ExportData struct {
	RunMetadata
	Populations []int `json:"populations"`
}

// ExportJSON writes the metadata and full population series of a run.
func ExportJSON(w io.Writer, meta RunMetadata, populations []int) error {
	data := ExportData{
		RunMetadata: meta,
		Populations: populations,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one generation,population row per sample.
func WriteCSV(w io.Writer, result *sim.Result) error {
	return writePopulations(w, result.Populations)
}

// ExportCSV writes a stored population series.
func ExportCSV(w io.Writer, populations []int) error {
	return writePopulations(w, populations)
}

func writePopulations(w io.Writer, populations []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, n := range populations {
		if err := cw.Write([]string{strconv.Itoa(gen), strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
