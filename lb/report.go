package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/wiless/linkbudget"
)

// printReport renders the final result as a console table. The per-stage
// breakdown is already reported through the log while the pipeline runs.
func printReport(res linkbudget.Result) {
	color.New(color.FgCyan, color.Bold).Println("Link Budget Results")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Quantity", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Elevation", fmt.Sprintf("%.2f degrees", res.Pointing.ElevationDeg)},
		{"Azimuth", fmt.Sprintf("%.2f degrees", res.Pointing.AzimuthDeg)},
		{"Slant range", fmt.Sprintf("%.2f km", res.Pointing.SlantRangeM/1e3)},
		{"EIRP", fmt.Sprintf("%.2f dBW", res.EirpDbw)},
		{"Path loss", fmt.Sprintf("%.2f dB", res.PathLossDb)},
		{"Rx dish gain", fmt.Sprintf("%.2f dB", res.RxDishGainDb)},
		{"LNB noise figure", fmt.Sprintf("%.2f dB", res.NoiseFigDb.Lnb)},
		{"Coax noise figure", fmt.Sprintf("%.2f dB", res.NoiseFigDb.Coax)},
		{"Rx noise figure", fmt.Sprintf("%.2f dB", res.NoiseFigDb.Total)},
		{"Input-noise temp", fmt.Sprintf("%.2f K", res.NoiseTempK.EffectiveInput)},
		{"System noise temp", fmt.Sprintf("%.2f K", res.NoiseTempK.System)},
		{"C/N", fmt.Sprintf("%.2f dB", res.CnrDb)},
		{"Capacity", formatRate(res.CapacityBps)},
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// formatRate renders a bit rate with a readable unit prefix.
func formatRate(bps float64) string {
	switch {
	case bps >= 1e9:
		return fmt.Sprintf("%.2f Gbps", bps/1e9)
	case bps >= 1e6:
		return fmt.Sprintf("%.2f Mbps", bps/1e6)
	case bps >= 1e3:
		return fmt.Sprintf("%.2f kbps", bps/1e3)
	default:
		return fmt.Sprintf("%.2f bps", bps)
	}
}
