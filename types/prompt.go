package types

type PromptResp struct {
	Category string `json:"category"`
	Question string `json:"question"`
}

type PromptListResp struct {
	Total   int          `json:"total"`
	Prompts []PromptResp `json:"prompts"`
}
