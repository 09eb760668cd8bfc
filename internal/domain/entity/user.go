package entity

// Planes válidos para User (enum cerrado).
const (
	PlanFree = "Free"
	PlanPro  = "Pro"
)

// User representa un usuario administrado desde el dashboard.
// El ID es entero incremental (max existente + 1); DateCreated se asigna
// al crear y no se modifica después.
type User struct {
	ID          int    `json:"id"`
	Avatar      string `json:"avatar"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Plan        string `json:"plan"`
	DateCreated string `json:"dateCreated"` // YYYY-MM-DD
}

// IsValidPlan indica si plan pertenece a {Free, Pro}.
func IsValidPlan(plan string) bool {
	return plan == PlanFree || plan == PlanPro
}
