package preferencedto

// FilterPreferenceInput là input PUT /preferences/filters
type FilterPreferenceInput struct {
	Status string `json:"status" validate:"required"`
	Search string `json:"search" validate:"max=100"`
	Sort   string `json:"sort" validate:"required,oneof=date-asc date-desc nom-asc nom-desc"`
}

// ThemePreferenceInput là input PUT /preferences/theme - một token chuỗi duy nhất
type ThemePreferenceInput struct {
	Theme string `json:"theme" validate:"required,max=30"`
}
