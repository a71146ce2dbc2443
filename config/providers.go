package config

// Naver covers the openapi.naver.com local search API.
type Naver struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	SearchURL    string `json:"search_url" yaml:"search_url"`
}

// NaverCloud covers the maps.apigw.ntruss.com gateway (geocoding and the
// Directions 5 driving API share one credential pair).
type NaverCloud struct {
	ClientID      string `json:"client_id" yaml:"client_id"`
	ClientSecret  string `json:"client_secret" yaml:"client_secret"`
	GeocodeURL    string `json:"geocode_url" yaml:"geocode_url"`
	DirectionsURL string `json:"directions_url" yaml:"directions_url"`
}

// Odsay covers the api.odsay.com transit search API.
type Odsay struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

type Kakao struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	RedirectURI  string `json:"redirect_uri" yaml:"redirect_uri"`
	TokenURL     string `json:"token_url" yaml:"token_url"`
	ProfileURL   string `json:"profile_url" yaml:"profile_url"`
}

type Google struct {
	ClientID string `json:"client_id" yaml:"client_id"`
}

type OpenAI struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
