package gptmodels

type GenJobPostingResponse struct {
	Description string `json:"description"`
}
