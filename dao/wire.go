//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewFolders,
	NewPlaces,
	NewPlaceLikes,
	NewCourses,
	NewDiaries,
	NewDiaryUsers,
	NewCouples,
	NewCoupleInvitations,
	NewImages,
)
