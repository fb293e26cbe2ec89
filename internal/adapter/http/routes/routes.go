package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "tradequote/docs"
	"tradequote/internal/adapter/http/handlers"
	"tradequote/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Quotes         *handlers.QuoteHandler
	Segments       *handlers.SegmentHandler
	VendorServices *handlers.VendorServiceHandler
	VendorBilling  *handlers.VendorBillingHandler
}

type Options struct {
	Log            logrus.FieldLogger
	AllowedOrigins []string
	// Gatherer backs GET /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with the public /v1 API, metrics and
// swagger.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsHandler(opts.Gatherer)))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSegmentRoutes(v1, h.Segments)
	addQuoteRoutes(v1, h.Quotes)
	addVendorRoutes(v1, h.VendorServices, h.VendorBilling)
	return router
}

// Run serves router on addr until ctx is done, then drains in-flight requests.
func Run(ctx context.Context, router *gin.Engine, addr string, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("[http][server] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if opts.Log != nil {
			opts.Log.WithField("panic", recovered).Error("[http][server] recovered from panic")
		}
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))

	corsCfg := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowedOrigins
	}
	corsCfg.AddAllowHeaders("Authorization", "X-User-ID", "X-User-Email")
	corsCfg.AddExposeHeaders("Content-Disposition", "X-Invoice-Number")
	router.Use(cors.New(corsCfg))
}

func metricsHandler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
