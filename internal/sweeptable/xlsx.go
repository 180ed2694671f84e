package sweeptable

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yan-jin/CyclingCalculator/internal/domain/model"
	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// SaveToXLSX writes the parameter summary and the sweep series to an
// Excel workbook: a Parameters sheet and a Sweep sheet.
func SaveToXLSX(filename string, req model.SweepRequest, points []types.Point) error {
	f := excelize.NewFile()

	// Parameters
	params := "Parameters"
	f.SetSheetName("Sheet1", params)

	paramRows := []struct {
		name  string
		value float64
	}{
		{"FTP [W]", req.FTP},
		{"Race distance [km]", req.RaceDistanceKm},
		{"Rider weight [kg]", req.Profile.RiderWeight},
		{"Bike weight [kg]", req.Profile.BikeWeight},
		{"Frontal area [m2]", req.Profile.FrontalArea},
		{"Drag coefficient", req.Profile.DragCoefficient},
		{"Drivetrain loss [%]", req.Profile.DrivetrainLossPct},
		{"Rolling resistance", req.Profile.RollingResistanceCoeff},
		{"Hill grade [%]", req.Profile.HillGradePct},
		{"Headwind [m/s]", req.Profile.Headwind},
		{"Air density [kg/m3]", req.Profile.AirDensity},
	}
	for i, p := range paramRows {
		row := i + 1
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(params, nameCell, p.name)
		f.SetCellValue(params, valueCell, p.value)
	}

	// Sweep
	sheet := "Sweep"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	headers := []string{"Power [W]", "Speed [km/h]", "Duration [h]", "Duration", "TSS"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, p := range points {
		row := i + 2
		values := []interface{}{p.Power, p.SpeedKmh, p.DurationHours, p.DurationText, p.TSS}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.SaveAs(filename)
}
