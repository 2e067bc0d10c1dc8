package entity

// Models lists every persisted entity in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Patient{},
		&Doctor{},
		&Appointment{},
		&Medicine{},
		&Sale{},
		&SaleItem{},
		&StockMovement{},
		&Prescription{},
		&PrescriptionItem{},
	}
}
