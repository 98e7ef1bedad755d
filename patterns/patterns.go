package patterns
import (
	"errors"
	"fmt"
	"sort"

	"pbridge/config"
	"pbridge/stegano/text"
)

var (
	ErrUnknownCodec = errors.New("unknown encoder type")
)

// discovery information about a single pattern
type Info struct {
	Description	string	`json:"description"`
	Example		string	`json:"example"`
}

/*
 * Registry maps pattern names to codecs. it is built once at startup and
 * never changes afterwards, so it can be shared between goroutines
 * without any locking.
 */
type Registry struct {
	codecs	map[string]text.Codec
	names	[]string
}

func New( codecs ...text.Codec ) (*Registry, error) {
	r := &Registry{
		codecs: make( map[string]text.Codec, len(codecs) ),
		names: make( []string, 0, len(codecs) ),
	}
	for _, c := range codecs {
		if c == nil {
			return nil, fmt.Errorf("nil codec")
		}
		name := c.Name()
		if _, ok := r.codecs[name]; ok {
			return nil, fmt.Errorf("pattern %q is already registered", name)
		}
		r.codecs[name] = c
		r.names = append( r.names, name )
	}
	sort.Strings( r.names )
	return r, nil
}

// every codec we have, in the default order
func AllCodecs( pc *config.PatternsConfig ) ([]text.Codec, error) {
	filler := []string{}
	if pc != nil {
		filler = pc.Filler
	}
	indentation, err := text.NewIndentationCodec( filler... )
	if err != nil {
		return nil, err
	}
	markdown, err := text.NewTableCodec( text.NarrowTritWidth )
	if err != nil {
		return nil, err
	}
	wide, err := text.NewTableCodec( text.WideTritWidth )
	if err != nil {
		return nil, err
	}
	return []text.Codec{ indentation, markdown, wide }, nil
}

/*
 * builds a registry from the configuration. if no patterns are enabled
 * explicitly, all of them are.
 */
func FromConfig( pc *config.PatternsConfig ) (*Registry, error) {
	all, err := AllCodecs( pc )
	if err != nil {
		return nil, err
	}
	if pc == nil || len(pc.Enabled) == 0 {
		return New( all... )
	}

	byName := map[string]text.Codec{}
	for _, c := range all {
		byName[ c.Name() ] = c
	}
	selected := []text.Codec{}
	for _, name := range pc.Enabled {
		c, ok := byName[name]
		if ok == false {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
		}
		selected = append( selected, c )
	}
	return New( selected... )
}

func(r *Registry) Get( name string ) (text.Codec, error) {
	c, ok := r.codecs[name]
	if ok == false {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, name)
	}
	return c, nil
}

// sorted names of all the patterns
func(r *Registry) Names() []string {
	return append( []string{}, r.names... )
}

/*
 * describes every pattern with an example made from the codec's own
 * sample message. a failing sample leaves the example empty.
 */
func(r *Registry) List() map[string]Info {
	result := make( map[string]Info, len(r.codecs) )
	for name, c := range r.codecs {
		example, err := c.Encode( c.Sample() )
		if err != nil {
			example = ""
		}
		result[name] = Info{
			Description: c.Description(),
			Example: example,
		}
	}
	return result
}

func(r *Registry) Encode( name, message string ) (string, string, error) {
	c, err := r.Get( name )
	if err != nil {
		return "", "", err
	}
	carrier, err := c.Encode( message )
	if err != nil {
		return "", "", err
	}
	return carrier, c.Description(), nil
}

func(r *Registry) Decode( name, carrier string ) (string, error) {
	c, err := r.Get( name )
	if err != nil {
		return "", err
	}
	return c.Decode( carrier )
}
