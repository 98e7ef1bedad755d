package util
import (
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

/*
 * a custom logger: bitmask of levels, optional colors and timestamps.
 * writes to stderr when no file is configured and to a rotating file
 * otherwise.
 */
const (
	Error = 1
	Warning = 2
	Info = 4

	RedColor = "\033[31m"
	YellowColor = "\033[33m"
	GreenColor = "\033[32m"
	CyanColor = "\033[36m"
	BlueColor = "\033[34m"
	MagentaColor = "\033[35m"
	ResetColor = "\033[0m"
)

type RotateInfo struct {
	MaxSizeMB	int	`yaml:"max_size_mb"`
	MaxBackups	int	`yaml:"max_backups"`
	MaxAgeDays	int	`yaml:"max_age_days"`
	Compress	bool	`yaml:"compress"`
}

type LoggerInfo struct {
	Filename	string		`yaml:"filename"`
	IsColored	bool		`yaml:"is_colored"`
	SaveTime	bool		`yaml:"save_time"`
	Mode		uint8		`yaml:"mode"`
	Rotate		RotateInfo	`yaml:"rotate"`
}

type Logger struct {
	li	*LoggerInfo
	out	io.Writer
	mtx	sync.Mutex
}

func NewLogger( li *LoggerInfo ) *Logger {
	var out io.Writer = os.Stderr
	if li.Filename != "" {
		out = &lumberjack.Logger{
			Filename: li.Filename,
			MaxSize: max( li.Rotate.MaxSizeMB, 10 ),
			MaxBackups: max( li.Rotate.MaxBackups, 1 ),
			MaxAge: max( li.Rotate.MaxAgeDays, 7 ),
			Compress: li.Rotate.Compress,
		}
	}
	return NewLoggerTo( li, out )
}

// logger with an explicit destination, mostly for tests
func NewLoggerTo( li *LoggerInfo, out io.Writer ) *Logger {
	return &Logger{
		li: li,
		out: out,
	}
}

func(l *Logger) colorize( line string, color string ) string {
	if l.li.IsColored {
		return color + line + ResetColor
	}
	return line
}

func(l *Logger) prepareString( str string, clr string ) string {
	toWrite := l.colorize( str, clr ) + " "
	if l.li.SaveTime {
		toWrite += time.Now().Format( time.RFC3339 ) + " "
	}
	return toWrite
}

func(l *Logger) LogString( s string ) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	io.WriteString( l.out, s + "\n" )
}

func(l *Logger) LogError( err error ) {
	if l.li.Mode & Error == Error {
		toWrite := l.prepareString( "[ERROR]", RedColor ) + err.Error()
		l.LogString( toWrite )
	}
}

func(l *Logger) LogWarning( warning string ) {
	if l.li.Mode & Warning == Warning {
		toWrite := l.prepareString( "[WARNING]", YellowColor ) + warning
		l.LogString( toWrite )
	}
}

func(l *Logger) LogInfo( info string ) {
	if l.li.Mode & Info == Info {
		toWrite := l.prepareString( "[INFO]", CyanColor ) + info
		l.LogString( toWrite )
	}
}

// flushes and closes the log file, if any.
func(l *Logger) Close() error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if lj, ok := l.out.(*lumberjack.Logger); ok {
		return lj.Close()
	}
	return nil
}
