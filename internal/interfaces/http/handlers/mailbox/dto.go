package mailbox

type CreateMailboxRequest struct {
	Name        string `json:"name" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`

	Username string `json:"username"`
	Password string `json:"password"`
	Hostname string `json:"hostname"`
	TLS      *bool  `json:"tls"`

	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
}

type DeleteMailboxRequest struct {
	ID uint `json:"id" binding:"required"`
}
