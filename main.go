package main
import (
	"os"
	"fmt"
	"sort"
	"context"
	"os/signal"
	"syscall"
	"path/filepath"
	"encoding/json"

	"github.com/spf13/pflag"

	"pbridge/util"
	"pbridge/config"
	"pbridge/local"
	"pbridge/patterns"
	"pbridge/stegano/text"
)

const (
	PBridgeFolder = ".pbridge"
	ConfigFilename = "config.yaml"
	MaxInputSize = 16 << 20
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "run":
		err = runServer( args )
	case "encode":
		err = encode( args )
	case "decode":
		err = decode( args )
	case "patterns":
		err = listPatterns( args )
	case "inspect":
		err = inspect( args )
	case "genconf":
		err = genConfig( args )
	case "seal":
		err = sealConfig( args, true )
	case "unseal":
		err = sealConfig( args, false )
	default:
		help()
		return
	}
	if err != nil {
		fatal( os.Args[1] + ":", err )
	}
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigFilename
	}
	return filepath.Join( home, PBridgeFolder, ConfigFilename )
}

func newFlagSet( name string, configFile *string ) *pflag.FlagSet {
	fs := pflag.NewFlagSet( name, pflag.ExitOnError )
	fs.StringVarP( configFile, "config", "c", defaultConfigFile(), "path to the configuration file" )
	return fs
}

// loads the configuration, asking for a password only if the file is sealed.
func loadConfig( configFile string ) (*config.FullConfig, []byte, error) {
	sealed, err := config.IsSealed( configFile )
	if err != nil {
		return nil, nil, err
	}
	var password []byte
	if sealed {
		password, err = util.GetPasswd("Password: ")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read password: %w", err)
		}
	}
	conf, err := config.LoadConfig( configFile, password )
	return conf, password, err
}

/*
 * the registry for one-shot commands. a missing configuration file is
 * fine here, defaults are used.
 */
func loadRegistry( configFile string, explicit bool ) (*patterns.Registry, error) {
	if _, err := os.Stat( configFile ); err != nil && explicit == false {
		return patterns.FromConfig( nil )
	}
	conf, _, err := loadConfig( configFile )
	if err != nil {
		return nil, err
	}
	return patterns.FromConfig( &conf.Patterns )
}

func runServer( args []string ) error {
	var configFile string
	fs := newFlagSet( "run", &configFile )
	fs.Parse( args )

	// the first run creates the default configuration
	if _, err := os.Stat( configFile ); err != nil {
		if err = writeDefaultConfig( configFile ); err != nil {
			return fmt.Errorf("failed to save default configuration: %w", err)
		}
	}
	_, password, err := loadConfig( configFile )
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext( context.Background(), os.Interrupt, syscall.SIGTERM )
	defer stop()
	return local.RunPatternBridge( ctx, configFile, password )
}

func encode( args []string ) error {
	var configFile, pattern string
	fs := newFlagSet( "encode", &configFile )
	fs.StringVarP( &pattern, "pattern", "p", local.DefaultEncoderType, "pattern to hide the message with" )
	fs.Parse( args )

	registry, err := loadRegistry( configFile, fs.Changed("config") )
	if err != nil {
		return err
	}
	message, err := util.ReadInput( fs.Args(), os.Stdin, MaxInputSize )
	if err != nil {
		return err
	}
	carrier, _, err := registry.Encode( pattern, message )
	if err != nil {
		return err
	}
	fmt.Print( carrier )
	return nil
}

func decode( args []string ) error {
	var configFile, pattern, input string
	fs := newFlagSet( "decode", &configFile )
	fs.StringVarP( &pattern, "pattern", "p", local.DefaultEncoderType, "pattern the carrier was made with" )
	fs.StringVarP( &input, "file", "f", "", "read the carrier from a file instead of stdin" )
	fs.Parse( args )

	registry, err := loadRegistry( configFile, fs.Changed("config") )
	if err != nil {
		return err
	}
	carrier, err := readCarrier( input )
	if err != nil {
		return err
	}
	message, err := registry.Decode( pattern, carrier )
	if err != nil {
		return err
	}
	fmt.Println( message )
	return nil
}

func readCarrier( filename string ) (string, error) {
	if filename == "" {
		return util.ReadInput( nil, os.Stdin, MaxInputSize )
	}
	f, err := os.Open( filename )
	if err != nil {
		return "", err
	}
	defer f.Close()
	return util.ReadInput( nil, f, MaxInputSize )
}

func listPatterns( args []string ) error {
	var configFile string
	fs := newFlagSet( "patterns", &configFile )
	fs.Parse( args )

	registry, err := loadRegistry( configFile, fs.Changed("config") )
	if err != nil {
		return err
	}
	list := registry.List()
	names := make( []string, 0, len(list) )
	for name := range list {
		names = append( names, name )
	}
	sort.Strings( names )
	for _, name := range names {
		fmt.Printf("%s%s%s\n\t%s\n", util.CyanColor, name, util.ResetColor, list[name].Description)
	}
	return nil
}

func inspect( args []string ) error {
	var input string
	fs := pflag.NewFlagSet( "inspect", pflag.ExitOnError )
	fs.StringVarP( &input, "file", "f", "", "read the carrier from a file instead of stdin" )
	fs.Parse( args )

	carrier, err := readCarrier( input )
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent( text.InspectTable( carrier ), "", "  " )
	if err != nil {
		return err
	}
	fmt.Println( string(out) )
	return nil
}

func writeDefaultConfig( configFile string ) error {
	if err := os.MkdirAll( filepath.Dir( configFile ), 0700 ); err != nil {
		return err
	}
	return config.SaveConfig( configFile, nil, config.DefaultConfig() )
}

func genConfig( args []string ) error {
	var configFile string
	var force bool
	fs := newFlagSet( "genconf", &configFile )
	fs.BoolVar( &force, "force", false, "overwrite an existing configuration" )
	fs.Parse( args )

	if _, err := os.Stat( configFile ); err == nil && force == false {
		return fmt.Errorf("%s already exists, use --force to overwrite it", configFile)
	}
	if err := writeDefaultConfig( configFile ); err != nil {
		return err
	}
	fmt.Println("[+] Configuration written to", configFile)
	return nil
}

/*
 * seal encrypts the configuration with a password, unseal stores it as
 * plain YAML again.
 */
func sealConfig( args []string, seal bool ) error {
	var configFile string
	fs := newFlagSet( "seal", &configFile )
	fs.Parse( args )

	conf, _, err := loadConfig( configFile )
	if err != nil {
		return err
	}
	if seal == false {
		return config.SaveConfig( configFile, nil, conf )
	}

	password, err := util.GetPasswd("New password: ")
	if err != nil {
		return err
	}
	repeat, err := util.GetPasswd("Repeat password: ")
	if err != nil {
		return err
	}
	if string(password) != string(repeat) {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return fmt.Errorf("empty password")
	}
	return config.SaveConfig( configFile, password, conf )
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(1)
}

func help() {
	line := `Usage: ./pbridge <command> [arguments]

The following commands are supported:
	run		run the local encoding service
	encode		hide a message (arguments or stdin) in carrier text
	decode		reveal a message from carrier text
	patterns	list available patterns
	inspect		check whether a carrier renders as a markdown table
	genconf		write the default configuration
	seal		encrypt the configuration with a password
	unseal		decrypt the configuration
`

	fmt.Printf("%s", line)
}
