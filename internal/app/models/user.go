package models

// User defines a member of the ORA community. User records are immutable
// value snapshots once introduced; identity is the ID field. Activities and
// chat messages copy user data at insertion time, so a profile referenced
// from several participant lists never changes retroactively.
type User struct {
	ID        string   `json:"id" example:"u1"`                      // Unique identifier for the user
	Name      string   `json:"name" example:"Helena"`                // Display name
	Avatar    string   `json:"avatar" example:"https://..."`         // Avatar image URL
	Interests []string `json:"interests" example:"Vinhos Naturais"`  // Interest tags used for curation
	Bio       string   `json:"bio,omitempty" example:"Colecionando"` // Optional short bio
}
