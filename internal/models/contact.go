package models

// Contact is the managed resource: a person plus the path of their
// uploaded image, served back under /uploads/.
type Contact struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Telephone string `db:"telephone" json:"telephone"`
	Image     string `db:"image" json:"image"`
}
