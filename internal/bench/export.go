package bench

import (
	"encoding/json"
	"io"
	"os"
)

type SeriesData struct {
	Min    float64   `json:"min"`
	Mean   float64   `json:"mean"`
	Max    float64   `json:"max"`
	Values []float64 `json:"values"`
}

type ExportData struct {
	Rows    int                   `json:"rows"`
	Cols    int                   `json:"cols"`
	Ticks   int                   `json:"ticks"`
	Seed    int64                 `json:"seed"`
	Speed   int                   `json:"speed"`
	Density int                   `json:"density"`
	Spawns  int                   `json:"spawns"`
	Length  int                   `json:"length"`
	Color   string                `json:"color"`
	Series  map[string]SeriesData `json:"series"`
}

func exportData(r *Result) ExportData {
	o := r.Options
	data := ExportData{
		Rows:    o.Rows,
		Cols:    o.Cols,
		Ticks:   o.Ticks,
		Seed:    o.Seed,
		Speed:   o.State.SpeedMs,
		Density: o.State.DensityPct,
		Spawns:  o.State.MaxSpawns,
		Length:  o.State.MaxLength,
		Color:   o.State.Scheme.String(),
		Series:  make(map[string]SeriesData),
	}
	for _, s := range r.series() {
		data.Series[s.Name()] = SeriesData{Min: s.Min(), Mean: s.Value(), Max: s.Max(), Values: s.Values()}
	}
	return data
}

// WriteJSON encodes the result as indented JSON.
func WriteJSON(w io.Writer, r *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(r))
}

// ExportJSON writes the result to path.
func ExportJSON(path string, r *Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, r)
}
