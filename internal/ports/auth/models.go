package auth

// Claims representa la información extraída del token.
// Role distingue admin (agenda general, finanzas) de tutor.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
