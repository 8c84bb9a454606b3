package database

// ListFilter narrows list queries. The zero value is the public-facing
// default: visible rows only, no parent restriction.
type ListFilter struct {
	// IncludeHidden also returns rows with is_visible = false. Admin-only.
	IncludeHidden bool
	// CategoryID restricts skills to one category. Zero means all categories.
	CategoryID uint
	// ExperienceID restricts responsibilities to one experience. Zero means all.
	ExperienceID uint
}
