package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seat-booking/internal/app"
	"github.com/metinatakli/seat-booking/internal/booking"
	"github.com/metinatakli/seat-booking/internal/publisher"
	"github.com/metinatakli/seat-booking/internal/repository"
	appvalidator "github.com/metinatakli/seat-booking/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App            *app.Application
	DB             *pgxpool.Pool
	Redis          *redis.Client
	SessionManager *scs.SessionManager
	Publisher      *publisher.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	events := publisher.NewMockPublisher()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	svc, err := booking.NewService(
		booking.Config{MinDaysUntilBooking: cfg.Booking.MinDaysUntilBooking},
		repository.NewPostgresBookingRepository(db),
		repository.NewPostgresMovieSessionRepository(db),
		repository.NewPostgresHallRepository(db),
		events,
		logger,
	)
	if err != nil {
		redisClient.Close()
		db.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		svc,
	)

	return &TestApp{
		App:            application,
		DB:             db,
		Redis:          redisClient,
		SessionManager: sessionManager,
		Publisher:      events,
	}, nil
}

// authenticatedUserCookies stores a session for userId in Redis and returns the
// cookie that carries it.
func (a *TestApp) authenticatedUserCookies(t testing.TB, userId int) []http.Cookie {
	ctx, err := a.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	a.SessionManager.Put(ctx, app.SessionKeyUserId.String(), userId)

	token, _, err := a.SessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: a.SessionManager.Cookie.Name, Value: token}}
}
