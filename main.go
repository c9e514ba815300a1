package main
import (
	"os"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"ppmsteg/config"
	"ppmsteg/util"
)

type options struct {
	imagePath	string
	depth		uint
	savePath	string
	message		string
	configFile	string
	policy		string
	locator		string
	capacity	bool
	verbose		bool
}

func main() {
	if err := run( os.Args[1:], os.Stdout, os.Stderr ); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fatal( "Error:", err )
	}
}

func parseArgs( args []string, stderr io.Writer ) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flagSet := pflag.NewFlagSet( "ppmsteg", pflag.ContinueOnError )
	flagSet.SetOutput( stderr )
	flagSet.UintVarP( &opts.depth, "depth", "d", 0, "bytes to skip after the header before the message starts" )
	flagSet.StringVarP( &opts.savePath, "save-path", "s", "", "where to write the encoded image" )
	flagSet.StringVarP( &opts.message, "message", "m", "", "message to hide" )
	flagSet.StringVarP( &opts.configFile, "config", "c", "", "YAML configuration file" )
	flagSet.StringVar( &opts.policy, "policy", "", "what to do with byte 255 carrying a zero bit: step-down, saturate or reject" )
	flagSet.StringVar( &opts.locator, "locator", "", "how to find the pixel payload: auto, lines or pnm" )
	flagSet.BoolVar( &opts.capacity, "capacity", false, "print how many message bytes fit at --depth and exit" )
	flagSet.BoolVarP( &opts.verbose, "verbose", "v", false, "log progress to stderr" )
	flagSet.Usage = func() { help( flagSet ) }

	if err := flagSet.Parse( args ); err != nil {
		return nil, flagSet, err
	}
	if flagSet.NArg() != 1 {
		help( flagSet )
		return nil, flagSet, fmt.Errorf("expected exactly one image path, got %d", flagSet.NArg())
	}
	opts.imagePath = flagSet.Arg(0)
	return opts, flagSet, nil
}

func loadConfig( opts *options ) (*config.FullConfig, error) {
	conf := config.DefaultConfig()
	if opts.configFile != "" {
		var err error
		if conf, err = config.LoadConfig( opts.configFile ); err != nil {
			return nil, err
		}
	}
	if opts.policy != "" {
		conf.Codec.Policy = opts.policy
	}
	if opts.locator != "" {
		conf.Codec.Locator = opts.locator
	}
	if opts.verbose {
		conf.Logger.Mode |= util.Info
	}
	return conf, nil
}

func run( args []string, stdout, stderr io.Writer ) error {
	opts, flagSet, err := parseArgs( args, stderr )
	if err != nil {
		return err
	}
	conf, err := loadConfig( opts )
	if err != nil {
		return err
	}
	logger := util.NewLogger( &conf.Logger )
	codec, err := conf.Codec.Codec( logger )
	if err != nil {
		return err
	}

	if opts.capacity {
		n, err := codec.CapacityOf( opts.imagePath, int(opts.depth) )
		if err != nil {
			return err
		}
		fmt.Fprintf( stdout, "Capacity: %d bytes\n", n )
		return nil
	}

	// encode only when all of depth, destination and message were given
	if flagSet.Changed("depth") && flagSet.Changed("save-path") && flagSet.Changed("message") {
		logger.LogInfo( "write" )
		_, err := codec.EncodeFile( opts.imagePath, opts.savePath, opts.message, int(opts.depth) )
		return err
	}
	logger.LogInfo( "read" )
	msg, err := codec.DecodeFile( opts.imagePath )
	if err != nil {
		return err
	}
	fmt.Fprintf( stdout, "Hidden Message: %s\n", msg )
	return nil
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(1)
}

func help( flagSet *pflag.FlagSet ) {
	line := `Usage: ppmsteg [flags] <image>

Hides a text message in the pixel bytes of a PPM image, or reveals it.
With --depth, --save-path and --message the message is written into a copy
of <image>; otherwise the message hidden in <image> is printed.

Flags:
`
	fmt.Fprint( flagSet.Output(), line )
	flagSet.PrintDefaults()
}
