package attendance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"etix/config"
	"etix/lib"
	"etix/models"
	"etix/types"
	"etix/utils"

	"github.com/jonboulle/clockwork"
	"github.com/tidwall/gjson"
)

// IsEventToday reports whether the event takes place today in local time.
func IsEventToday(event *models.Event, clock clockwork.Clock) bool {
	date, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, event.TanggalMulai, time.Local)
	if err != nil {
		log.Printf("Error parsing event date [%s]: %s\n", event.TanggalMulai, err.Error())
		return false
	}
	return utils.SameDay(date, clock.Now())
}

// IsEventTime reports whether the current time falls within the event's
// [waktu_mulai, waktu_selesai] window on the event's day. Both bounds are
// inclusive.
func IsEventTime(event *models.Event, clock clockwork.Clock) bool {
	start, err := utils.CombineDateTime(event.TanggalMulai, event.WaktuMulai)
	if err != nil {
		log.Printf("Error parsing event start time: %s\n", err.Error())
		return false
	}
	end, err := utils.CombineDateTime(event.TanggalMulai, event.WaktuSelesai)
	if err != nil {
		log.Printf("Error parsing event end time: %s\n", err.Error())
		return false
	}
	now := clock.Now()
	return !now.Before(start) && !now.After(end)
}

// SelfCheckinAllowed gates the participant check-in form: the event must be
// running right now and the registration must not already be attended.
func SelfCheckinAllowed(event *models.Event, status types.AttendanceStatus, clock clockwork.Clock) bool {
	if status == types.ATTENDANCE_CHECKED_IN || status == types.ATTENDANCE_CHECKED_OUT {
		return false
	}
	return IsEventToday(event, clock) && IsEventTime(event, clock)
}

// SelfCheckin submits a manually entered attendance token, normalized to
// uppercase, and returns the attendance number the backend assigned.
func SelfCheckin(ctx context.Context, client *lib.APIClient, eventID uint, rawToken string) (*types.CheckinResult, error) {
	token := utils.NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}
	body := types.CheckinRequestBody{Token: token}
	rbytes, err := client.Post(ctx, fmt.Sprintf("/events/%d/checkin", eventID), &body)
	if err != nil {
		log.Printf("Error on self check-in for Event [%d]: %s\n", eventID, err.Error())
		return nil, err
	}
	number := gjson.GetBytes(rbytes, "attendance_number")
	if !number.Exists() {
		number = gjson.GetBytes(rbytes, "data.attendance_number")
	}
	return &types.CheckinResult{AttendanceNumber: int(number.Int())}, nil
}
