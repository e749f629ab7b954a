package entity

// Identity is a user reference expanded for read models.
// When the referencing key is NULL every field is nil.
type Identity struct {
	ID       *int64  `db:"id" json:"id"`
	Email    *string `db:"email" json:"email"`
	Name     *string `db:"name" json:"name"`
	Username *string `db:"username" json:"username"`
}

// IsZero reports whether the identity references no user.
func (i Identity) IsZero() bool {
	return i.ID == nil
}

// AuditTrail is the expanded form of the audit foreign keys.
type AuditTrail struct {
	CreatedBy  Identity `db:"created_by"`
	ModifiedBy Identity `db:"modified_by"`
	DeletedBy  Identity `db:"deleted_by"`
}
