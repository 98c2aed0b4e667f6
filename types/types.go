package types

import (
	"encoding/json"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type JSONB map[string]any

type Gender string

const (
	GENDER_MALE   Gender = "L"
	GENDER_FEMALE Gender = "P"
)

type BookingStep string

const (
	STEP_CATEGORIES  BookingStep = "categories"
	STEP_PARTICIPANT BookingStep = "participant"
	STEP_PAYMENT     BookingStep = "payment"
	STEP_SUCCESS     BookingStep = "success"
	STEP_ABORTED     BookingStep = "aborted"
)

type RegistrationStatus string

const (
	REGISTRATION_PENDING  RegistrationStatus = "pending"
	REGISTRATION_APPROVED RegistrationStatus = "approved"
	REGISTRATION_REJECTED RegistrationStatus = "rejected"
)

type AttendanceStatus string

const (
	ATTENDANCE_PENDING     AttendanceStatus = "pending"
	ATTENDANCE_CHECKED_IN  AttendanceStatus = "checked_in"
	ATTENDANCE_CHECKED_OUT AttendanceStatus = "checked_out"
)

// PaymentOutcome is the canonical ingestion of the backend's synonymous
// payment_status strings. Internal logic never matches on the raw values.
type PaymentOutcome string

const (
	PAYMENT_SUCCESS PaymentOutcome = "success"
	PAYMENT_PENDING PaymentOutcome = "pending"
	PAYMENT_FAILED  PaymentOutcome = "failed"
)

func NormalizePaymentOutcome(raw string) PaymentOutcome {
	switch raw {
	case "paid", "approved", "success", "completed", "free", "":
		return PAYMENT_SUCCESS
	case "pending":
		return PAYMENT_PENDING
	default:
		return PAYMENT_FAILED
	}
}

const (
	PAYMENT_METHOD_FREE = "free"

	PAYMENT_STATUS_PAID    = "paid"
	PAYMENT_STATUS_PENDING = "pending"
)

type ParticipantData struct {
	NamaPeserta  string `json:"nama_peserta" validate:"required"`
	JenisKelamin Gender `json:"jenis_kelamin" validate:"required,oneof=L P"`
	TanggalLahir string `json:"tanggal_lahir" validate:"required,birthdate"`
	EmailPeserta string `json:"email_peserta" validate:"required,email"`
}

type CreateRegistrationRequestBody struct {
	TicketCategoryID uint    `json:"ticket_category_id" binding:"required"`
	NamaPeserta      string  `json:"nama_peserta" binding:"required"`
	JenisKelamin     Gender  `json:"jenis_kelamin" binding:"required"`
	TanggalLahir     string  `json:"tanggal_lahir" binding:"required"`
	EmailPeserta     string  `json:"email_peserta" binding:"required"`
	TotalHarga       float64 `json:"total_harga"`
	PaymentStatus    string  `json:"payment_status" binding:"required"`
	PaymentMethod    string  `json:"payment_method" binding:"required"`
}

type CheckinRequestBody struct {
	Token string `json:"token" binding:"required"`
}

type VerifyTokenRequestBody struct {
	Token string `json:"token" binding:"required"`
}

// Generic envelope the backend wraps payloads in.
type APIEnvelope struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type CheckinResult struct {
	AttendanceNumber int `json:"attendance_number"`
}

type AttendanceSummary struct {
	Total      int `json:"total"`
	CheckedIn  int `json:"checked_in"`
	CheckedOut int `json:"checked_out"`
	Pending    int `json:"pending"`
}

type AttendanceFilter string

const (
	FILTER_ALL          AttendanceFilter = "all"
	FILTER_ATTENDED     AttendanceFilter = "attended"
	FILTER_NOT_ATTENDED AttendanceFilter = "not_attended"
)
