package models

import "etix/types"

type TicketCategory struct {
	ID           uint    `json:"id"`
	EventID      uint    `json:"event_id,omitempty"`
	NamaKategori string  `json:"nama_kategori,omitempty"`
	Deskripsi    string  `json:"deskripsi,omitempty"`
	Harga        float64 `json:"harga"`
	Kuota        uint    `json:"kuota,omitempty"`
	Terjual      uint    `json:"terjual,omitempty"`
	Aktif        bool    `json:"aktif,omitempty"`

	types.Timestamps
}

// Available reports whether the category can still be selected for booking.
func (t *TicketCategory) Available() bool {
	return t.Aktif && t.Terjual < t.Kuota
}

func (t *TicketCategory) Free() bool {
	return t.Harga == 0
}
