package schema

type EmailVerification struct {
	Token string `json:"token" binding:"required"`
}

type IDVerification struct {
	IDImageURL string  `json:"id_image_url" binding:"required,http_url"`
	Notes      *string `json:"notes" binding:"omitempty,max=500"`
}

// IDUploadData is the data block returned after an ID upload.
type IDUploadData struct {
	IDImageURL string  `json:"id_image_url"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

type VerificationStatusData struct {
	IsVerified         bool    `json:"is_verified"`
	VerificationStatus string  `json:"verification_status"`
	EmailVerified      bool    `json:"email_verified"`
	VerificationNotes  *string `json:"verification_notes"`
}

type EmailVerificationData struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type ResendVerificationData struct {
	Email string `json:"email"`
}
