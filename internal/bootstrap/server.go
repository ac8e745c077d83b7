package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ibomair/appcore/api"
	"github.com/ibomair/appcore/config"
	"github.com/ibomair/appcore/internal/auth"
	"github.com/ibomair/appcore/internal/bookingflow"
	"github.com/ibomair/appcore/internal/service/checkin"
	"github.com/ibomair/appcore/internal/service/payment"
	"github.com/ibomair/appcore/internal/service/search"
	"github.com/ibomair/appcore/internal/session"
)

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Session session.UseCase
	Flow    bookingflow.UseCase
	Search  search.SearchUseCase
	Payment payment.PaymentUseCase
	Checkin checkin.CheckinUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	handler := newRouter(cfg, deps)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")

	api.NewAuthHandler(deps.Session, cfg.Auth).Register(v1.Group("/auth"))
	api.NewFlightHandler(deps.Search, deps.Flow).Register(v1.Group("/flights"))
	api.NewBookingHandler(deps.Flow, deps.Payment).Register(v1.Group("/bookings"))
	api.NewCheckinHandler(deps.Checkin).Register(v1.Group("/checkin"))
	api.NewContentHandler().Register(v1.Group("/content"))

	loyalty := v1.Group("/loyalty")
	loyalty.Use(auth.Middleware(cfg.Auth))
	api.NewLoyaltyHandler(deps.Session).Register(loyalty)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
