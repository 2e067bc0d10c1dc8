package entity

// Role names carried in access tokens.
const (
	RoleAdmin        = "admin"
	RolePharmacist   = "pharmacist"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
)
