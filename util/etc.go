package util
import (
	"io"
	"fmt"
	"strings"
)

/*
 * message from command line arguments, or the whole input if there are
 * no arguments. input above limit bytes is rejected.
 */
func ReadInput( args []string, in io.Reader, limit int64 ) (string, error) {
	if len(args) > 0 {
		return strings.Join( args, " " ), nil
	}
	data, err := io.ReadAll( io.LimitReader( in, limit + 1 ) )
	if err != nil {
		return "", err
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("input is larger than %d bytes", limit)
	}
	return string(data), nil
}
