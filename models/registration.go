package models

import "etix/types"

type Registration struct {
	ID               uint                     `json:"id"`
	EventID          uint                     `json:"event_id,omitempty"`
	TicketCategoryID uint                     `json:"ticket_category_id,omitempty"`
	KodePendaftaran  string                   `json:"kode_pendaftaran,omitempty"`
	NamaPeserta      string                   `json:"nama_peserta,omitempty"`
	JenisKelamin     types.Gender             `json:"jenis_kelamin,omitempty"`
	TanggalLahir     string                   `json:"tanggal_lahir,omitempty"`
	EmailPeserta     string                   `json:"email_peserta,omitempty"`
	Status           types.RegistrationStatus `json:"status,omitempty"`
	PaymentStatus    string                   `json:"payment_status,omitempty"`
	TotalHarga       float64                  `json:"total_harga"`
	InvoiceNumber    *string                  `json:"invoice_number,omitempty"`
	QRPayload        *string                  `json:"qr_code,omitempty"`
	AttendanceToken  string                   `json:"attendance_token,omitempty"`

	Event          *Event          `json:"event,omitempty"`
	TicketCategory *TicketCategory `json:"ticket_category,omitempty"`

	types.Timestamps
}

// PaymentOutcome folds the backend's raw payment_status synonyms into the
// canonical enum at the ingestion boundary.
func (r *Registration) PaymentOutcome() types.PaymentOutcome {
	return types.NormalizePaymentOutcome(r.PaymentStatus)
}
