// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"teeup_backend/internal/app"
	"teeup_backend/internal/auth"
	"teeup_backend/internal/booking"
	"teeup_backend/internal/config"
	"teeup_backend/internal/firebase"
	"teeup_backend/internal/jobs"
	"teeup_backend/internal/page"
	platformElasticsearch "teeup_backend/internal/platform/elasticsearch"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/review"
	"teeup_backend/internal/theme"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,
		provideDB,
		platformElasticsearch.NewClient,

		// Admin authentication
		firebase.NewFirebaseService,
		auth.ProvideAdminVerifier,

		// Profiles
		profile.ProvideStore,
		profile.ProvideSearcher,
		profile.NewHandler,

		// Bookings
		booking.NewLogSink,
		wire.Bind(new(booking.Sink), new(*booking.LogSink)),
		booking.NewService,
		booking.NewHandler,

		// Admin review
		review.ProvideRepository,
		review.ProvideService,
		review.NewHandler,
		jobs.NewApplicationDigestJob,

		// Pro page themes
		theme.ProvideRepository,
		theme.NewService,
		theme.NewHandler,

		// Pages
		page.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
