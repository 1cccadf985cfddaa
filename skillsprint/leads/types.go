package leads

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles lead database operations
type Repository struct {
	db *pgxpool.Pool
}

// lead source channels
const (
	SourceContact    = "contact"
	SourceCheckout   = "checkout"
	SourceNewsletter = "newsletter"
)

// represents an edge-captured marketing lead or contact inquiry
type Lead struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
