package config
import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadConfig( t *testing.T ) {
	conf := DefaultConfig()
	conf.ServerConfig.Address = "0.0.0.0:9000"
	conf.Patterns.Filler = []string{ "alpha", "beta" }

	filename := filepath.Join( t.TempDir(), "config.yaml" )
	require.NoError( t, SaveConfig( filename, nil, conf ) )

	sealed, err := IsSealed( filename )
	require.NoError( t, err )
	assert.False( t, sealed, "plain config must not be sealed" )

	conf2, err := LoadConfig( filename, nil )
	require.NoError( t, err )
	assert.Equal( t, conf, conf2 )
}

func TestSealedConfig( t *testing.T ) {
	conf := DefaultConfig()
	conf.Patterns.Enabled = []string{ "indentation" }
	filename := filepath.Join( t.TempDir(), "config.yaml" )
	password := []byte("test-password")

	require.NoError( t, SaveConfig( filename, password, conf ) )
	sealed, err := IsSealed( filename )
	require.NoError( t, err )
	assert.True( t, sealed, "config saved with a password must be sealed" )

	_, err = LoadConfig( filename, nil )
	assert.Error( t, err, "sealed config needs a password" )
	_, err = LoadConfig( filename, []byte("wrong") )
	assert.Error( t, err, "wrong password must be rejected" )

	conf2, err := LoadConfig( filename, password )
	require.NoError( t, err )
	assert.Equal( t, []string{ "indentation" }, conf2.Patterns.Enabled )
}

func TestPartialConfigKeepsDefaults( t *testing.T ) {
	filename := filepath.Join( t.TempDir(), "config.yaml" )
	data := "server_config:\n  address: \"127.0.0.1:8080\"\n"
	require.NoError( t, os.WriteFile( filename, []byte(data), 0600 ) )

	conf, err := LoadConfig( filename, nil )
	require.NoError( t, err )
	assert.Equal( t, "127.0.0.1:8080", conf.ServerConfig.Address )
	assert.Equal( t, DefaultConfig().ServerConfig.MaxBodyBytes, conf.ServerConfig.MaxBodyBytes )
	assert.Equal( t, DefaultConfig().Logger.Mode, conf.Logger.Mode )
}

func TestValidate( t *testing.T ) {
	tests := map[string]func( c *FullConfig ){
		"empty address": func( c *FullConfig ) { c.ServerConfig.Address = " " },
		"zero body limit": func( c *FullConfig ) { c.ServerConfig.MaxBodyBytes = 0 },
		"empty filler": func( c *FullConfig ) { c.Patterns.Filler = []string{ "ok", "" } },
	}
	for name, spoil := range tests {
		t.Run( name, func( t *testing.T ) {
			conf := DefaultConfig()
			spoil( conf )
			assert.Error( t, conf.Validate() )
		})
	}
	assert.NoError( t, DefaultConfig().Validate() )
}
