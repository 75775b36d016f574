package models

import "fmt"

// Default map viewport (Karachi)
const (
	MapCenterLat = 24.916452
	MapCenterLon = 67.042635
	MapZoom      = 10
)

// MapMarker is a single pin on the reports map
type MapMarker struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Title     string  `json:"title"`
	Popup     string  `json:"popup"`
}

// MapView is everything a client needs to draw the reports map
type MapView struct {
	CenterLat float64     `json:"center_lat"`
	CenterLon float64     `json:"center_lon"`
	Zoom      int         `json:"zoom"`
	Markers   []MapMarker `json:"markers"`
}

// Marker builds the map pin for a report.
func (r Report) Marker() MapMarker {
	resolved := "No"
	if r.IsResolved {
		resolved = "Yes"
	}
	return MapMarker{
		ID:        r.ID.Hex(),
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Title:     r.String(),
		Popup:     fmt.Sprintf("Report: %s<br>Resolved: %s", r.ReportType, resolved),
	}
}

// NewMapView lays every report out as a flat marker list.
func NewMapView(reports []Report) MapView {
	markers := make([]MapMarker, 0, len(reports))
	for _, r := range reports {
		markers = append(markers, r.Marker())
	}
	return MapView{
		CenterLat: MapCenterLat,
		CenterLon: MapCenterLon,
		Zoom:      MapZoom,
		Markers:   markers,
	}
}
