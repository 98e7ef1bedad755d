package local
import (
	"context"
	"strings"

	"pbridge/util"
	"pbridge/config"
	"pbridge/patterns"
)

/*
 * reads the configuration, builds the logger and the registry once and
 * serves the encoding API until ctx is done.
 */
func RunPatternBridge( ctx context.Context, configFile string, password []byte ) error {
	fullConfig, err := config.LoadConfig( configFile, password )
	if err != nil {
		return err
	}

	logger := util.NewLogger( &fullConfig.Logger )
	defer logger.Close()

	registry, err := patterns.FromConfig( &fullConfig.Patterns )
	if err != nil {
		logger.LogError( err )
		return err
	}
	logger.LogInfo( "Enabled patterns: " + strings.Join( registry.Names(), ", " ) )

	return Serve( ctx, &fullConfig.ServerConfig, logger, registry )
}
