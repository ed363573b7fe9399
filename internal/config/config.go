package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvVarPrefix = "HUFFTOOL"

	// CompressedSuffix is appended to the input path to name the output of
	// compress, and stripped from it by decompress.
	CompressedSuffix = ".huff"

	// DecompressedSuffix names the output of decompress when the input
	// does not end in CompressedSuffix.
	DecompressedSuffix = ".out"

	DefaultNumWorkers = 1
	MinNumWorkers     = 1
	MaxNumWorkers     = 256
)

const (
	CommandCompress   = "compress"
	CommandDecompress = "decompress"
	CommandStat       = "stat"
	CommandVerify     = "verify"
)

var (
	// VERSION gets set during build
	VERSION = "0.0.0"
)

type Config struct {
	CLI *CLI

	// Command is the name of the selected subcommand.
	Command string
}

type CLI struct {
	Debug      bool             `kong:"help='Enable debug output',short='d'"`
	Quiet      bool             `kong:"help='Only show warnings and errors',short='q'"`
	NumWorkers int              `kong:"name='workers',help='Goroutines used to count byte frequencies',default='${default_workers}',short='w'"`
	Version    kong.VersionFlag `help:"Show version and exit" short:"v" env:"-"`

	Compress   CompressCmd   `kong:"cmd,help='Compress a file'"`
	Decompress DecompressCmd `kong:"cmd,help='Decompress a file'"`
	Stat       StatCmd       `kong:"cmd,help='Show entropy and compression statistics for a file'"`
	Verify     VerifyCmd     `kong:"cmd,help='Compress and decompress a file in memory and compare the result'"`
}

type CompressCmd struct {
	Input  string `kong:"arg,help='File to compress',type='path'"`
	Output string `kong:"arg,optional,help='Compressed file to write (default: INPUT.huff)',type='path'"`
	Force  bool   `kong:"help='Overwrite the output file if it exists',short='f'"`
}

type DecompressCmd struct {
	Input  string `kong:"arg,help='Compressed file to read',type='path'"`
	Output string `kong:"arg,optional,help='File to write (default: INPUT without .huff)',type='path'"`
	Force  bool   `kong:"help='Overwrite the output file if it exists',short='f'"`
}

type StatCmd struct {
	Input string `kong:"arg,help='File to analyze',type='path'"`
	Top   int    `kong:"help='Number of most frequent bytes to show',default='8'"`
}

type VerifyCmd struct {
	Input string `kong:"arg,help='File to round-trip',type='path'"`
}

// NewConfig parses args (typically os.Args[1:]) with environment overrides
// and an optional .env file, and validates the result.
func NewConfig(args []string) (*Config, error) {
	// Attempt to load .env
	_ = godotenv.Load(".env")

	cli, command, err := readCLIArgs(args)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing CLI args")
	}

	setDefaults(cli, command)

	if err := validateCLIArgs(cli, command); err != nil {
		return nil, errors.Wrap(err, "error validating CLI args")
	}

	return &Config{
		CLI:     cli,
		Command: command,
	}, nil
}

func readCLIArgs(args []string) (*CLI, string, error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("hufftool"),
		kong.Description("Static Huffman compressor"),
		kong.UsageOnError(),
		kong.DefaultEnvars(EnvVarPrefix),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Vars{
			"version":         VERSION,
			"default_workers": strconv.Itoa(DefaultNumWorkers),
		})
	if err != nil {
		return nil, "", errors.Wrap(err, "error building CLI parser")
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, "", err
	}

	// ctx.Command() looks like "compress <input> <output>"
	command := strings.Fields(ctx.Command())
	if len(command) == 0 {
		return nil, "", errors.New("no command given")
	}

	return cli, command[0], nil
}

func setDefaults(cli *CLI, command string) {
	switch command {
	case CommandCompress:
		if cli.Compress.Output == "" {
			cli.Compress.Output = cli.Compress.Input + CompressedSuffix
		}
	case CommandDecompress:
		if cli.Decompress.Output == "" {
			cli.Decompress.Output = DecompressedPath(cli.Decompress.Input)
		}
	}
}

// DecompressedPath returns the default output path for decompressing input.
func DecompressedPath(input string) string {
	if trimmed := strings.TrimSuffix(input, CompressedSuffix); trimmed != input && trimmed != "" {
		return trimmed
	}
	return input + DecompressedSuffix
}

func validateCLIArgs(cli *CLI, command string) error {
	if cli == nil {
		return errors.New("config cannot be nil")
	}

	if cli.Debug && cli.Quiet {
		return errors.New("--debug and --quiet are mutually exclusive")
	}

	if cli.NumWorkers < MinNumWorkers || cli.NumWorkers > MaxNumWorkers {
		return errors.Errorf("--workers must be between %d and %d", MinNumWorkers, MaxNumWorkers)
	}

	switch command {
	case CommandCompress:
		return validatePaths(cli.Compress.Input, cli.Compress.Output)
	case CommandDecompress:
		return validatePaths(cli.Decompress.Input, cli.Decompress.Output)
	case CommandStat:
		if cli.Stat.Top < 0 || cli.Stat.Top > 256 {
			return errors.New("--top must be between 0 and 256")
		}
		return validateInput(cli.Stat.Input)
	case CommandVerify:
		return validateInput(cli.Verify.Input)
	default:
		return errors.Errorf("unknown command %q", command)
	}
}

func validatePaths(input, output string) error {
	if err := validateInput(input); err != nil {
		return err
	}

	if output == input {
		return errors.Errorf("output %s cannot be the same as the input", output)
	}

	return nil
}

func validateInput(input string) error {
	if input == "" {
		return errors.New("input cannot be empty")
	}

	info, err := os.Stat(input)
	if os.IsNotExist(err) {
		return errors.Errorf("input %s does not exist", input)
	}

	if err != nil {
		return errors.Wrapf(err, "unable to stat input %s", input)
	}

	if info.IsDir() {
		return errors.Errorf("input %s is a directory", input)
	}

	return nil
}
