package client

type CreateClientRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

type UpdateClientRequest struct {
	ID            uint   `json:"id" binding:"required"`
	Name          string `json:"name"`
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

type DeleteClientRequest struct {
	ID uint `json:"id" binding:"required"`
}
