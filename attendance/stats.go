package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"etix/lib"
	"etix/models"
	"etix/types"
)

type AttendanceStats struct {
	Summary types.AttendanceSummary   `json:"summary"`
	Data    []models.AttendanceRecord `json:"data"`
}

// GetAttendanceStats fetches the organizer dashboard roster and summary.
func GetAttendanceStats(ctx context.Context, client *lib.APIClient, eventID uint) (*AttendanceStats, error) {
	rbytes, err := client.Get(ctx, fmt.Sprintf("/organizer/events/%d/attendance/stats", eventID))
	if err != nil {
		log.Printf("Error retrieving attendance stats for Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	var stats AttendanceStats
	if err := json.Unmarshal(rbytes, &stats); err != nil {
		log.Printf("Error decoding attendance stats: %s\n", err.Error())
		return nil, err
	}
	return &stats, nil
}
