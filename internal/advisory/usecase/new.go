package usecase

import (
	"time"

	"krishimitra-backend/internal/advisory/repository"
	"krishimitra-backend/internal/cropindex"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/pkg/geocode"
	"krishimitra-backend/pkg/llmprovider"
	pkgLog "krishimitra-backend/pkg/log"
	"krishimitra-backend/pkg/openweather"
)

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.FarmerRepository
	classifier    intent.Classifier
	index         *cropindex.Bundle
	weather       openweather.IOpenWeather
	geocoder      geocode.IGeocode
	llm           llmprovider.Generator
	topK          int
	forecastHours int
	now           func() time.Time
}

// New creates a new advisory UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.FarmerRepository,
	classifier intent.Classifier,
	index *cropindex.Bundle,
	weather openweather.IOpenWeather,
	geocoder geocode.IGeocode,
	llm llmprovider.Generator,
	topK int,
	forecastHours int,
) *implUseCase {
	return &implUseCase{
		l:             l,
		repo:          repo,
		classifier:    classifier,
		index:         index,
		weather:       weather,
		geocoder:      geocoder,
		llm:           llm,
		topK:          topK,
		forecastHours: forecastHours,
		now:           time.Now,
	}
}
