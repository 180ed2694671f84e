package sweep

import (
	"math"

	"github.com/yan-jin/CyclingCalculator/internal/domain/types"
)

// Training zone boundaries relative to FTP.
var zoneBands = []struct {
	name string
	from float64
	to   float64
}{
	{"Zone 2", 0.56, 0.75},
	{"Zone 3", 0.75, 0.90},
	{"Zone 4", 0.90, 1.05},
	{"Zone 5", 1.05, 1.20},
}

// Zones returns the fixed relative-to-FTP power-zone bands for the given
// FTP, each boundary rounded up to a whole Watt.
func Zones(ftp float64) []types.Zone {
	zones := make([]types.Zone, len(zoneBands))
	for i, band := range zoneBands {
		zones[i] = types.Zone{
			Name: band.name,
			From: int(math.Ceil(ftp * band.from)),
			To:   int(math.Ceil(ftp * band.to)),
		}
	}
	return zones
}
