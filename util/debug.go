package util
import (
	"log"
	"os"
)

const (
	DebugVariableName = "PBRIDGE_DEBUG"
)

var (
	DebugMode = os.Getenv( DebugVariableName ) != ""
)

func DebugPrintln( args ...any ) {
	if DebugMode == true {
		log.Println( args... )
	}
}

func DebugPrintf( format string, args ...any ) {
	if DebugMode == true {
		log.Printf( format, args... )
	}
}
