package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"etix/lib"
	"etix/models"

	"github.com/tidwall/gjson"
)

// GetEvent fetches the event an attendee is booking into. A fetch failure is
// surfaced as-is; there is no fallback data.
func GetEvent(ctx context.Context, client *lib.APIClient, eventID uint) (*models.Event, error) {
	rbytes, err := client.Get(ctx, fmt.Sprintf("/events/%d", eventID))
	if err != nil {
		log.Printf("Error retrieving Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	var event models.Event
	if err := json.Unmarshal(unwrap(rbytes), &event); err != nil {
		log.Printf("Error decoding Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	return &event, nil
}

func ListTicketCategories(ctx context.Context, client *lib.APIClient, eventID uint) ([]models.TicketCategory, error) {
	rbytes, err := client.Get(ctx, fmt.Sprintf("/events/%d/ticket-categories", eventID))
	if err != nil {
		log.Printf("Error retrieving ticket categories for Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	var categories []models.TicketCategory
	if err := json.Unmarshal(unwrap(rbytes), &categories); err != nil {
		log.Printf("Error decoding ticket categories for Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	return categories, nil
}

// AvailableCategories filters out inactive and sold-out tiers.
func AvailableCategories(categories []models.TicketCategory) []models.TicketCategory {
	out := make([]models.TicketCategory, 0, len(categories))
	for _, c := range categories {
		if c.Available() {
			out = append(out, c)
		}
	}
	return out
}

// unwrap returns the data payload when the backend wraps it in an envelope.
func unwrap(body []byte) []byte {
	if data := gjson.GetBytes(body, "data"); data.Exists() {
		return []byte(data.Raw)
	}
	return body
}
