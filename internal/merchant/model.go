package merchant

import "time"

type Merchant struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	StoreName string    `json:"store_name"`
	CreatedAt time.Time `json:"created_at"`
}
