package local
import (
	"io"
	"net"
	"time"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbridge/util"
	"pbridge/config"
	"pbridge/patterns"
)

func serveArgs( t *testing.T, address string ) (*config.ServerConfiguration, *util.Logger, *patterns.Registry) {
	t.Helper()
	registry, err := patterns.FromConfig( nil )
	require.NoError( t, err )
	li := util.LoggerInfo{ Mode: util.Error | util.Warning | util.Info }
	sc := &config.ServerConfiguration{
		Address: address,
		ReadTimeout: 1000,
		WriteTimeout: 1000,
		MaxBodyBytes: 1 << 20,
	}
	return sc, util.NewLoggerTo( &li, io.Discard ), registry
}

func TestServeShutdown( t *testing.T ) {
	sc, logger, registry := serveArgs( t, "127.0.0.1:0" )
	ctx, cancel := context.WithCancel( context.Background() )

	done := make( chan error, 1 )
	go func() {
		done <- Serve( ctx, sc, logger, registry )
	}()
	time.Sleep( 50 * time.Millisecond )
	cancel()

	select {
	case err := <-done:
		assert.NoError( t, err )
	case <-time.After( 6 * time.Second ):
		t.Fatal("Server did not stop after the context was cancelled")
	}
}

func TestServeAddressInUse( t *testing.T ) {
	ln, err := net.Listen( "tcp", "127.0.0.1:0" )
	require.NoError( t, err )
	defer ln.Close()

	sc, logger, registry := serveArgs( t, ln.Addr().String() )
	ctx, cancel := context.WithCancel( context.Background() )
	defer cancel()

	done := make( chan error, 1 )
	go func() {
		done <- Serve( ctx, sc, logger, registry )
	}()

	select {
	case err := <-done:
		assert.Error( t, err )
	case <-time.After( 5 * time.Second ):
		t.Fatal("Bind failure was not reported")
	}
}
