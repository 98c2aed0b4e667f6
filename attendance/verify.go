package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"

	"etix/lib"
	"etix/types"
	"etix/utils"

	"github.com/tidwall/gjson"
)

// VerifyToken submits an attendance token on behalf of the organizer. The
// input may be the raw token or a JSON blob pasted from a QR scan; either
// way the literal token value is what gets sent. The backend's message is
// relayed verbatim, on success and on rejection alike.
func VerifyToken(ctx context.Context, client *lib.APIClient, eventID uint, input string) (string, error) {
	token := utils.ExtractToken(input)
	if token == "" {
		return "", errors.New("token is required")
	}
	body := types.VerifyTokenRequestBody{Token: token}
	rbytes, err := client.Post(ctx, fmt.Sprintf("/organizer/events/%d/attendance/verify", eventID), &body)
	if err != nil {
		log.Printf("Error verifying token for Event [%d]: %s\n", eventID, err.Error())
		return "", err
	}
	return gjson.GetBytes(rbytes, "message").String(), nil
}
