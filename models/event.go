package models

import "etix/types"

type Event struct {
	ID              uint   `json:"id"`
	NamaEvent       string `json:"nama_event,omitempty"`
	Deskripsi       string `json:"deskripsi,omitempty"`
	Lokasi          string `json:"lokasi,omitempty"`
	TanggalMulai    string `json:"tanggal_mulai,omitempty"`
	TanggalSelesai  string `json:"tanggal_selesai,omitempty"`
	WaktuMulai      string `json:"waktu_mulai,omitempty"`
	WaktuSelesai    string `json:"waktu_selesai,omitempty"`
	Kuota           uint   `json:"kuota,omitempty"`
	JumlahPendaftar uint   `json:"jumlah_pendaftar,omitempty"`
	Sertifikat      bool   `json:"sertifikat,omitempty"`

	TicketCategories []TicketCategory `json:"ticket_categories,omitempty"`

	types.Timestamps
}
