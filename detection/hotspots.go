package detection

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-healthwatch/types"
)

var log = logrus.WithField("prefix", "detection")

const (
	distanceThresholdKM = 100.0 // max distance between neighbours in one hotspot
	earthRadiusKM       = 6371.0

	highOutbreakThreshold   = 2
	highLocCountThreshold   = 3
	mediumOutbreakThreshold = 1
)

// DetectHotspots grows a cluster from every high-risk location by adding
// locations within distanceThresholdKM of any member. A location belongs to
// at most one hotspot; hotspots come out in seed order.
func DetectHotspots(locations []types.MapLocation) []types.Hotspot {
	hotspots := []types.Hotspot{}
	processed := make(map[string]bool)

	for i := range locations {
		seed := &locations[i]
		if seed.Risk != types.RiskHigh || processed[seed.Name] {
			continue
		}

		var cluster []*types.MapLocation
		queue := []*types.MapLocation{seed}
		queued := map[string]bool{seed.Name: true}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if !processed[current.Name] {
				cluster = append(cluster, current)
				processed[current.Name] = true
			}

			for j := range locations {
				neighbor := &locations[j]
				if queued[neighbor.Name] || processed[neighbor.Name] {
					continue
				}
				if haversineDistance(current.Coordinates, neighbor.Coordinates) <= distanceThresholdKM {
					queued[neighbor.Name] = true
					queue = append(queue, neighbor)
				}
			}
		}

		if len(cluster) > 0 {
			hotspots = append(hotspots, hotspotFromCluster(cluster))
		}
	}

	log.Debugf("Detected %d hotspots across %d locations", len(hotspots), len(locations))
	return hotspots
}

func hotspotFromCluster(cluster []*types.MapLocation) types.Hotspot {
	h := types.Hotspot{
		Locations: make([]string, 0, len(cluster)),
		Severity:  types.RiskLow,
	}

	var sumLat, sumLng float64
	for _, loc := range cluster {
		h.Locations = append(h.Locations, loc.Name)
		h.Outbreaks += loc.Outbreaks
		h.PendingReports += loc.PendingReports
		sumLat += loc.Coordinates.Lat
		sumLng += loc.Coordinates.Lng
	}

	count := float64(len(cluster))
	h.Center = types.LatLng{Lat: sumLat / count, Lng: sumLng / count}

	if h.Outbreaks >= mediumOutbreakThreshold {
		h.Severity = types.RiskMedium
	}
	if h.Outbreaks >= highOutbreakThreshold || len(cluster) >= highLocCountThreshold {
		h.Severity = types.RiskHigh
	}

	// Sort for a stable id
	sort.Strings(h.Locations)
	h.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.Join(h.Locations, "|"))).String()

	return h
}

// haversineDistance calculates the great-circle distance in km between two
// points given in decimal degrees.
func haversineDistance(a, b types.LatLng) float64 {
	radLat1 := a.Lat * math.Pi / 180
	radLon1 := a.Lng * math.Pi / 180
	radLat2 := b.Lat * math.Pi / 180
	radLon2 := b.Lng * math.Pi / 180

	deltaLat := radLat2 - radLat1
	deltaLon := radLon2 - radLon1

	x := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))

	return earthRadiusKM * c
}
