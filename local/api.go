package local
import (
	"fmt"
	"time"
	"errors"
	"context"
	"net/http"

	"pbridge/util"
	"pbridge/config"
	"pbridge/patterns"
)

/*
 * local encoding API. every request works with the shared read-only
 * registry, codecs keep no state, so requests never see each other.
 */
type Server struct {
	registry	*patterns.Registry
	logger		*util.Logger
	maxBody		int64
}

func NewServer( registry *patterns.Registry, logger *util.Logger, maxBody int64 ) *Server {
	return &Server{
		registry: registry,
		logger: logger,
		maxBody: maxBody,
	}
}

func(s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// hide a message, returns the carrier and a description of the pattern
	mux.HandleFunc("POST /api/encode", s.handleEncode)
	// reveal a message from carrier text
	mux.HandleFunc("POST /api/decode", s.handleDecode)
	// list of the patterns with examples
	mux.HandleFunc("GET /api/patterns", s.handlePatterns)
	// check how a table carrier renders
	mux.HandleFunc("POST /api/inspect", s.handleInspect)

	return s.logRequests( mux )
}

type statusRecorder struct {
	http.ResponseWriter
	status	int
}

func(r *statusRecorder) WriteHeader( status int ) {
	r.status = status
	r.ResponseWriter.WriteHeader( status )
}

func(s *Server) logRequests( next http.Handler ) http.Handler {
	return http.HandlerFunc(func( w http.ResponseWriter, r *http.Request ) {
		start := time.Now()
		rec := &statusRecorder{ w, http.StatusOK }
		next.ServeHTTP( rec, r )
		util.DebugPrintf("[local] %s %s -> %d (%v)\n", r.Method, r.URL.Path, rec.status, time.Since( start ))
		if rec.status >= http.StatusInternalServerError {
			s.logger.LogError( fmt.Errorf("%s %s -> %d", r.Method, r.URL.Path, rec.status) )
		}
	})
}

/*
 * serves the API until ctx is cancelled, then waits for running requests
 * a few seconds before giving up.
 */
func Serve( ctx context.Context, sc *config.ServerConfiguration, logger *util.Logger, registry *patterns.Registry ) error {
	srv := &http.Server{
		Addr: sc.Address,
		Handler: NewServer( registry, logger, sc.MaxBodyBytes ).Handler(),
		ReadTimeout: time.Duration( sc.ReadTimeout ) * time.Millisecond,
		WriteTimeout: time.Duration( sc.WriteTimeout ) * time.Millisecond,
	}

	errs := make( chan error, 1 )
	go func() {
		logger.LogInfo( "Listening and serving at address " + sc.Address )
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout( context.Background(), 5 * time.Second )
	defer cancel()
	if err := srv.Shutdown( shutdownCtx ); err != nil {
		return err
	}
	if err := <-errs; err != nil && errors.Is( err, http.ErrServerClosed ) == false {
		return err
	}
	logger.LogInfo("Server stopped")
	return nil
}
