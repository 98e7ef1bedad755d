package patterns
import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbridge/config"
	"pbridge/stegano/text"
)

func TestDefaultRegistry( t *testing.T ) {
	r, err := FromConfig( nil )
	require.NoError( t, err )
	assert.Equal( t, []string{ "indentation", "markdown", "markdown-wide" }, r.Names() )

	carrier, description, err := r.Encode( "indentation", "HI" )
	require.NoError( t, err )
	assert.NotEmpty( t, description )
	msg, err := r.Decode( "indentation", carrier )
	require.NoError( t, err )
	assert.Equal( t, "HI", msg )

	list := r.List()
	assert.Len( t, list, 3 )
	for name, info := range list {
		c, err := r.Get( name )
		require.NoError( t, err )
		assert.Equal( t, c.Description(), info.Description )
		decoded, err := c.Decode( info.Example )
		require.NoError( t, err, "example of %s must decode", name )
		assert.Equal( t, c.Sample(), decoded )
	}
}

func TestUnknownCodec( t *testing.T ) {
	r, err := FromConfig( &config.PatternsConfig{} )
	require.NoError( t, err )

	_, err = r.Get("whitespace")
	assert.True( t, errors.Is( err, ErrUnknownCodec ) )
	_, _, err = r.Encode( "whitespace", "x" )
	assert.True( t, errors.Is( err, ErrUnknownCodec ) )
	_, err = r.Decode( "whitespace", "x\n" )
	assert.True( t, errors.Is( err, ErrUnknownCodec ) )

	_, err = FromConfig( &config.PatternsConfig{ Enabled: []string{ "markdown", "morse" } } )
	assert.True( t, errors.Is( err, ErrUnknownCodec ) )
}

func TestEnabledAndFiller( t *testing.T ) {
	r, err := FromConfig( &config.PatternsConfig{
		Enabled: []string{ "indentation" },
		Filler: []string{ "# heading", "body" },
	})
	require.NoError( t, err )
	assert.Equal( t, []string{ "indentation" }, r.Names() )

	carrier, _, err := r.Encode( "indentation", "a" )
	require.NoError( t, err )
	assert.Contains( t, carrier, "# heading" )

	_, err = FromConfig( &config.PatternsConfig{ Filler: []string{ " padded" } } )
	assert.Error( t, err )
}

func TestDuplicateNames( t *testing.T ) {
	a, _ := text.NewTableCodec( text.NarrowTritWidth )
	b, _ := text.NewTableCodec( text.NarrowTritWidth )
	_, err := New( a, b )
	assert.Error( t, err )
	_, err = New( a, nil )
	assert.Error( t, err )
}

func TestConcurrentUse( t *testing.T ) {
	r, err := FromConfig( nil )
	require.NoError( t, err )
	messages := []string{ "first", "второй", "third 🙂" }

	var wg sync.WaitGroup
	errs := make( chan error, 64 )
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func( i int ) {
			defer wg.Done()
			msg := messages[ i % len(messages) ]
			for _, name := range []string{ "indentation", "markdown-wide" } {
				carrier, _, err := r.Encode( name, msg )
				if err != nil {
					errs <- err
					return
				}
				dec, err := r.Decode( name, carrier )
				if err != nil {
					errs <- err
					return
				}
				if dec != msg {
					errs <- errors.New("spoiled message " + dec)
					return
				}
			}
		}( i )
	}
	wg.Wait()
	close( errs )
	for err := range errs {
		t.Error( err )
	}
}
