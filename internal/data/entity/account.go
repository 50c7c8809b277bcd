package entity

// Account is a verified company account. Exactly one exists per normalized
// (lowercased, trimmed) email. Accounts are never deleted; the only mutation
// after creation is a password reset.
type Account struct {
	Base
	Email              string `db:"email"`
	PasswordHash       string `db:"password_hash"`
	CompanyName        string `db:"company_name"`
	CompanyDescription string `db:"company_description"`
	Verified           bool   `db:"verified"`
}
