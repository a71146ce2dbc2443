package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the whole application configuration, loaded once at startup and
// injected into constructors. Provider credentials never come from globals.
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Server     *Server     `json:"server" yaml:"server"`
	MySQL      *MySQL      `json:"mysql" yaml:"mysql"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Oss        *OssConfig  `json:"oss" yaml:"oss"`
	Naver      *Naver      `json:"naver" yaml:"naver"`
	NaverCloud *NaverCloud `json:"naver_cloud" yaml:"naver_cloud"`
	Odsay      *Odsay      `json:"odsay" yaml:"odsay"`
	Kakao      *Kakao      `json:"kakao" yaml:"kakao"`
	Google     *Google     `json:"google" yaml:"google"`
	OpenAI     *OpenAI     `json:"openai" yaml:"openai"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("failed to parse %s: %v", filename, err))
	}

	return &conf
}

// Debug reports whether debug mode is on.
func (c *Config) Debug() bool {
	return c.App.Debug
}
