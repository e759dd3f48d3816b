package labelsrepo

import "time"

// Label is a reusable tag that can be attached to any number of tasks.
type Label struct {
	LabelID   int64     `db:"label_id" json:"label_id"`
	Name      string    `db:"name" json:"name"`
	Color     *string   `db:"color" json:"color,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateLabel carries the fields accepted when creating a label.
type CreateLabel struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// UpdateLabel carries the optional fields of a partial label update.
// ClearColor removes the stored color; it wins over Color when both are set.
type UpdateLabel struct {
	Name       *string `json:"name,omitempty"`
	Color      *string `json:"color,omitempty"`
	ClearColor bool    `json:"-"`
}
