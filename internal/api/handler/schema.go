package handler

// --- Shared request / response types ---

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type registerRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	Role        string `json:"role"         validate:"required,oneof=client professional admin"`
	DisplayName string `json:"display_name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type rateRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type createRequestRequest struct {
	ProfessionalID string `json:"professional_id" validate:"required,uuid4"`
}

type updateRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=pending_approval active pending_evaluation finished"`
}

type createConversationRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,uuid4"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=professional establishment"`
}

type renameCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type establishmentRequest struct {
	Name        string   `json:"name"        validate:"required"`
	City        string   `json:"city"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Description string   `json:"description" validate:"max=4000"`
	CategoryID  string   `json:"category_id" validate:"omitempty,uuid4"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type planRequest struct {
	Tier   string  `json:"tier"   validate:"required,oneof=premium gold silver"`
	Name   string  `json:"name"   validate:"required"`
	Price  float64 `json:"price"  validate:"gte=0"`
	Active *bool   `json:"active" validate:"required"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
