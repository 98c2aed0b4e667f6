package models

import (
	"time"

	"etix/types"
)

type Attendance struct {
	ID             uint                   `json:"id"`
	RegistrationID uint                   `json:"registration_id,omitempty"`
	Status         types.AttendanceStatus `json:"status,omitempty"`
	Token          string                 `json:"token,omitempty"`
	CheckInTime    *time.Time             `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time             `json:"check_out_time,omitempty"`

	Registration *Registration `json:"registration,omitempty"`

	types.Timestamps
}

// AttendanceRecord is one roster row of the organizer attendance dashboard.
type AttendanceRecord struct {
	RegistrationID  uint                   `json:"registration_id"`
	KodePendaftaran string                 `json:"kode_pendaftaran,omitempty"`
	NamaPeserta     string                 `json:"nama_peserta,omitempty"`
	EmailPeserta    string                 `json:"email_peserta,omitempty"`
	AttendanceToken string                 `json:"attendance_token,omitempty"`
	Status          types.AttendanceStatus `json:"status,omitempty"`
	CheckInTime     *time.Time             `json:"check_in_time,omitempty"`
	CheckOutTime    *time.Time             `json:"check_out_time,omitempty"`
}

// IsAttended derives presence from either the forward-only status or a
// recorded check-in timestamp, whichever the backend happened to fill.
func (a *AttendanceRecord) IsAttended() bool {
	return a.Status == types.ATTENDANCE_CHECKED_IN ||
		a.Status == types.ATTENDANCE_CHECKED_OUT ||
		a.CheckInTime != nil
}
