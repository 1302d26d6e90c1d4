package models

import "fmt"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String formats the coordinates for display, e.g. "34.0113° N, 116.1669° W".
func (c Coordinates) String() string {
	ns, ew := "N", "E"
	lat, lon := c.Latitude, c.Longitude
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s", lat, ns, lon, ew)
}

type Landmark struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	ImageName   string      `json:"imageName"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Park        string      `json:"park"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
}

const FeaturedCategory = "Featured"

func (l Landmark) IsFeatured() bool {
	return l.Category == FeaturedCategory
}
