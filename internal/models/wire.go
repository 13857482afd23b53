package models

// CreateNamespaceRequest is the optional body of a namespace creation.
type CreateNamespaceRequest struct {
	Invite string `json:"invite,omitempty"`
}

// CreateNamespace200Response is returned after a namespace was created.
type CreateNamespace200Response struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Active bool   `json:"active"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message   string `json:"message"`
	Namespace string `json:"namespace,omitempty"`
}
