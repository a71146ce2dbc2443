//go:build wireinject
// +build wireinject

package main

import (
	"Woorigil/config"
	"Woorigil/dao"
	"Woorigil/dao/cache"
	"Woorigil/handler"
	"Woorigil/pkg/client"
	"Woorigil/pkg/database"
	"Woorigil/pkg/oss"
	"Woorigil/pkg/server"
	"Woorigil/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(

		client.NewRedisClient,
		oss.GetOssClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Folder), "*"),
		wire.Struct(new(handler.Place), "*"),
		wire.Struct(new(handler.Course), "*"),
		wire.Struct(new(handler.Directions), "*"),
		wire.Struct(new(handler.Search), "*"),
		wire.Struct(new(handler.Diary), "*"),
		wire.Struct(new(handler.Couple), "*"),
		wire.Struct(new(handler.Image), "*"),
		wire.Struct(new(handler.Prompt), "*"),
		wire.Struct(new(handler.Health), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil, nil
}
