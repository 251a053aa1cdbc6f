package domain

import "time"

// MaxAttachmentsPerInsect bounds how many images a catalog entry may own.
const MaxAttachmentsPerInsect = 3

// Category groups insects. Names are unique.
type Category struct {
	ID          int64
	Name        string
	Description *string
}

// Insect is a catalog entry. CategoryID is a weak reference: deleting the
// category nulls it out.
type Insect struct {
	ID             int64
	CommonName     string
	ScientificName *string
	CategoryID     *int64
	Description    *string
	Habitat        *string
	Behavior       *string

	// ImageURLs is filled by list queries only.
	ImageURLs []string
}

// InsectFilter narrows an insect listing. Zero values disable a condition.
type InsectFilter struct {
	ID         int64
	CommonName string
	CategoryID int64
}

// Attachment is an image stored for an insect. Locator points into blob
// storage; the bytes never live in the database.
type Attachment struct {
	ID        int64
	InsectID  int64
	Locator   string
	Caption   *string
	CreatedAt time.Time
}

// InsectPatch carries the allow-listed fields of a partial insect update.
// Nil pointers are left unchanged. An empty optional text clears the column
// and ClearCategory sets the category to NULL.
type InsectPatch struct {
	CommonName     *string
	ScientificName *string
	CategoryID     *int64
	ClearCategory  bool
	Description    *string
	Habitat        *string
	Behavior       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p InsectPatch) IsEmpty() bool {
	return p.CommonName == nil && p.ScientificName == nil && p.CategoryID == nil &&
		!p.ClearCategory && p.Description == nil && p.Habitat == nil && p.Behavior == nil
}
