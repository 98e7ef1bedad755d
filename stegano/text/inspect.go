package text
import (
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// what a GFM renderer would make of a table carrier.
type TableInfo struct {
	IsTable		bool		`json:"is_table"`
	Columns		int		`json:"columns"`
	Alignments	[]string	`json:"alignments"`
}

// the parser is stateless between Parse calls, so one instance is shared.
var (
	tableParser	goldmark.Markdown
	tableParserOnce	sync.Once
)

func getTableParser() goldmark.Markdown {
	tableParserOnce.Do(func() {
		tableParser = goldmark.New(
			goldmark.WithExtensions( extension.Table ),
		)
	})
	return tableParser
}

/*
 * parses the carrier as GitHub flavoured markdown and reports the first
 * table found. a carrier which does not render as a table is easy to
 * notice, so this is a cheap check before publishing one.
 */
func InspectTable( carrier string ) TableInfo {
	info := TableInfo{ Alignments: []string{} }
	source := []byte( carrier )
	doc := getTableParser().Parser().Parse( gmtext.NewReader( source ) )

	ast.Walk( doc, func( n ast.Node, entering bool ) (ast.WalkStatus, error) {
		if entering == false {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*extast.Table)
		if ok == false {
			return ast.WalkContinue, nil
		}
		info.IsTable = true
		info.Columns = len( table.Alignments )
		for _, a := range table.Alignments {
			info.Alignments = append( info.Alignments, a.String() )
		}
		return ast.WalkStop, nil
	})
	return info
}
