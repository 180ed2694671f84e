package sweeptable

import (
	"fmt"
	"io"
	"strings"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// PrintHeader writes the parameter summary above the table.
func PrintHeader(w io.Writer, req model.SweepRequest) {
	fmt.Fprintf(w, "FTP=%g W  distance=%g km  rider=%g kg  bike=%g kg\n",
		req.FTP, req.RaceDistanceKm, req.Profile.RiderWeight, req.Profile.BikeWeight)
	fmt.Fprintf(w, "A=%g m2  Cd=%g  loss=%g%%  Crr=%g  grade=%g%%  headwind=%g m/s  rho=%g kg/m3\n\n",
		req.Profile.FrontalArea, req.Profile.DragCoefficient, req.Profile.DrivetrainLossPct,
		req.Profile.RollingResistanceCoeff, req.Profile.HillGradePct,
		req.Profile.Headwind, req.Profile.AirDensity)
}

// PrintTable writes the sweep series as an aligned bordered table.
func PrintTable(w io.Writer, points []types.Point) {
	if len(points) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	headers := []string{"Power [W]", "Speed [km/h]", "Duration", "TSS"}

	// Build all cell strings first so widths can follow content.
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			fmt.Sprintf("%d", p.Power),
			fmt.Sprintf("%.2f", p.SpeedKmh),
			p.DurationText,
			fmt.Sprintf("%.1f", p.TSS),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	printLine := func() {
		fmt.Fprint(w, "+")
		for _, width := range widths {
			fmt.Fprint(w, strings.Repeat("-", width+2)+"+")
		}
		fmt.Fprintln(w)
	}

	printLine()
	fmt.Fprint(w, "|")
	for i, h := range headers {
		fmt.Fprintf(w, " %-*s |", widths[i], h)
	}
	fmt.Fprintln(w)
	printLine()

	for _, row := range rows {
		fmt.Fprint(w, "|")
		for j, cell := range row {
			fmt.Fprintf(w, " %*s |", widths[j], cell)
		}
		fmt.Fprintln(w)
	}
	printLine()
}

// PrintZones writes the training zone bands below the table.
func PrintZones(w io.Writer, zones []types.Zone) {
	fmt.Fprintln(w, "\nTraining zones:")
	for _, z := range zones {
		fmt.Fprintf(w, "  %-7s %4d - %4d W\n", z.Name, z.From, z.To)
	}
}
