package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"etix/lib"
	"etix/models"
	"etix/types"

	"github.com/tidwall/gjson"
)

// SubmitRegistration issues the create-registration request and returns the
// backend's Registration payload. On failure the error carries the backend's
// message so the caller can show it and stay on the current step.
func SubmitRegistration(ctx context.Context, client *lib.APIClient, eventID uint, body *types.CreateRegistrationRequestBody) (*models.Registration, error) {
	rbytes, err := client.Post(ctx, fmt.Sprintf("/events/%d/register", eventID), body)
	if err != nil {
		log.Printf("Error submitting registration for Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	payload := rbytes
	if data := gjson.GetBytes(rbytes, "data"); data.Exists() {
		payload = []byte(data.Raw)
	}
	var reg models.Registration
	if err := json.Unmarshal(payload, &reg); err != nil {
		log.Printf("Error decoding registration response: %s\n", err.Error())
		return nil, err
	}
	return &reg, nil
}
