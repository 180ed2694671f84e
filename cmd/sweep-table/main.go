package main

import (
	"context"
	"flag"
	"os"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/sweeptable"
)

func main() {
	var (
		ftp         = flag.Float64("ftp", model.DefaultFTPWatts, "Functional Threshold Power in Watts")
		distance    = flag.Float64("distance", model.DefaultRaceDistanceKm, "Race distance in km")
		riderWeight = flag.Float64("rider-weight", model.DefaultRiderWeightKg, "Rider weight in kg")
		bikeWeight  = flag.Float64("bike-weight", model.DefaultBikeWeightKg, "Bike weight in kg")
		frontalArea = flag.Float64("frontal-area", model.DefaultFrontalAreaM2, "Frontal area in m^2")
		dragCoeff   = flag.Float64("cd", model.DefaultDragCoefficient, "Drag coefficient")
		lossPct     = flag.Float64("loss", model.DefaultDrivetrainLossPct, "Drivetrain loss in percent")
		crr         = flag.Float64("crr", model.DefaultRollingResistanceCoeff, "Rolling resistance coefficient")
		grade       = flag.Float64("grade", model.DefaultHillGradePct, "Hill grade in percent (negative downhill)")
		headwind    = flag.Float64("headwind", model.DefaultHeadwindMs, "Headwind in m/s (positive against the rider)")
		airDensity  = flag.Float64("air-density", model.DefaultAirDensityKgM3, "Air density in kg/m^3")
		parallelism = flag.Int("parallelism", 1, "Concurrent power points per sweep")
		zones       = flag.Bool("zones", false, "Also print the training zone bands")
		xlsxFile    = flag.String("xlsx", "", "Export the table to this .xlsx file")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sweeptable.ShowHelp()
		return
	}

	cfg := &sweeptable.Config{
		Request: model.SweepRequest{
			FTP:            *ftp,
			RaceDistanceKm: *distance,
			Profile: model.RiderProfile{
				RiderWeight:            *riderWeight,
				BikeWeight:             *bikeWeight,
				FrontalArea:            *frontalArea,
				DragCoefficient:        *dragCoeff,
				DrivetrainLossPct:      *lossPct,
				RollingResistanceCoeff: *crr,
				HillGradePct:           *grade,
				Headwind:               *headwind,
				AirDensity:             *airDensity,
			},
		},
		Parallelism: *parallelism,
		ShowZones:   *zones,
		XLSXFile:    *xlsxFile,
	}

	if err := sweeptable.Run(context.Background(), cfg); err != nil {
		os.Stderr.WriteString("sweep failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
