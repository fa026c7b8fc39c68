package domain

import "time"

// DatasetLoad records one successful fetch of the dataset within a session.
type DatasetLoad struct {
	ID          string
	Source      string
	Rows        int
	StaffPolicy string
	LoadedAt    time.Time
}
