package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/plantctl/internal/analysis"
	"github.com/san-kum/plantctl/internal/sim"
	"github.com/san-kum/plantctl/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDAYS\tFIRMS\tTARGETER\tALGORITHM\tDECORATORS\tMEAN PROFIT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\t%.1f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Days,
			run.Firms,
			run.Targeter,
			run.Algorithm,
			strings.Join(run.Decorators, ","),
			run.Metrics["mean_profit"],
		)
	}

	return w.Flush()
}

// firmSeries loads a run and picks one firm's samples, the first firm when
// id is empty.
func firmSeries(runID, id string) (*storage.RunMetadata, []sim.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}
	if id == "" {
		id = samples[0].Firm
	}
	result := &sim.Result{Samples: samples}
	series := result.Firm(id)
	if len(series) == 0 {
		return nil, nil, fmt.Errorf("run %s has no firm %q", runID, id)
	}
	return meta, series, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := firmSeries(args[0], firmID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("firm: %s (%s / %s)\n", series[0].Firm, meta.Targeter, meta.Algorithm)
	fmt.Printf("days: %d\n\n", len(series))

	plots := []struct {
		caption string
		data    [][]float64
	}{
		{"workers / target", [][]float64{sim.Series(series, sim.Workers), sim.Series(series, sim.Target)}},
		{"wage", [][]float64{sim.Series(series, sim.Wage)}},
		{"weekly profit", [][]float64{sim.Series(series, sim.Profit)}},
	}
	for _, p := range plots {
		graph := asciigraph.PlotMany(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// output returns stdout, or the --out file.
func output() (io.Writer, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w, closeOut, err := output()
	if err != nil {
		return err
	}
	if err := storage.WriteCSV(w, samples); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	data := storage.NewExportData(*meta, samples)
	if outPath != "" {
		return storage.ExportJSON(outPath, data)
	}
	return storage.WriteJSON(os.Stdout, data)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := firmSeries(args[0], firmID)
	if err != nil {
		return err
	}
	if transient >= len(series) {
		return fmt.Errorf("transient %d leaves nothing of %d days", transient, len(series))
	}
	series = series[transient:]

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("firm: %s, days %d..%d\n\n", series[0].Firm, series[0].Day, series[len(series)-1].Day)

	workers := sim.Series(series, sim.Workers)
	ps := analysis.PowerSpectrum(workers)
	if len(ps) > 4 {
		plotData := ps[1 : len(ps)/4+1]
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (workers)"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	period, share := analysis.DominantPeriod(workers)
	if period == 0 {
		fmt.Println("workforce is constant")
	} else {
		fmt.Printf("dominant period: %.1f days (%.0f%% of power)\n", period, 100*share)
	}

	portrait := analysis.GeneratePhasePortrait(series)
	fmt.Printf("\nphase portrait: %s vs %s\n", portrait.YLabel, portrait.XLabel)
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 60, 20))
	return nil
}
