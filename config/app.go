package config

type App struct {
	Env         string `json:"env" yaml:"env"`
	Debug       bool   `json:"debug" yaml:"debug"`
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
	BaseURL     string `json:"base_url" yaml:"base_url"`
	HashSalt    string `json:"hash_salt" yaml:"hash_salt"`
}
