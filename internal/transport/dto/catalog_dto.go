package dto

// CreateCompanyRequest defines the structure for creating a company record.
type CreateCompanyRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Logo         *string `json:"logo" validate:"omitempty,max=500"`
	Website      *string `json:"website" validate:"omitempty,max=500"`
	Description  *string `json:"description"`
	Industry     *string `json:"industry" validate:"omitempty,max=100"`
	Size         *string `json:"size" validate:"omitempty,max=50"`
	Headquarters *string `json:"headquarters" validate:"omitempty,max=200"`
}

// CreateSkillRequest defines the structure for creating a canonical skill tag.
type CreateSkillRequest struct {
	SkillName string `json:"skill_name" validate:"required,max=100"`
}
