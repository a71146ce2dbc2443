package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(FolderService), "*"),
	wire.Bind(new(IFolderService), new(*FolderService)),

	wire.Struct(new(PlaceService), "*"),
	wire.Bind(new(IPlaceService), new(*PlaceService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),

	wire.Struct(new(SearchService), "Config", "Cache"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(DrivingService), "Config"),
	wire.Bind(new(IDrivingService), new(*DrivingService)),

	wire.Struct(new(TransitService), "Config", "Driving"),
	wire.Bind(new(ITransitService), new(*TransitService)),

	wire.Struct(new(DirectionsService), "*"),
	wire.Bind(new(IDirectionsService), new(*DirectionsService)),

	wire.Struct(new(CoupleService), "*"),
	wire.Bind(new(ICoupleService), new(*CoupleService)),

	wire.Struct(new(DiaryService), "*"),
	wire.Bind(new(IDiaryService), new(*DiaryService)),

	wire.Struct(new(PromptService), "Config"),
	wire.Bind(new(IPromptService), new(*PromptService)),

	NewOssService,
)
