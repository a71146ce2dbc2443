package server

import (
	"Woorigil/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	Folder     *handler.Folder
	Place      *handler.Place
	Course     *handler.Course
	Directions *handler.Directions
	Search     *handler.Search
	Diary      *handler.Diary
	Couple     *handler.Couple
	Image      *handler.Image
	Prompt     *handler.Prompt
	Health     *handler.Health
}
