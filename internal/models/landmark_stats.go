package models

type LandmarkStats struct {
	TotalLandmarks      int64            `json:"totalLandmarks"`
	LandmarksByCategory map[string]int64 `json:"landmarksByCategory"`
	LandmarksByState    map[string]int64 `json:"landmarksByState"`
	Featured            []Landmark       `json:"featured"`
}
