package conf

import (
	"go/build"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultOutputFile is used when neither the user nor the config names a file.
const DefaultOutputFile = "user_agents.txt"

// Args Global Application Arguments
var Args Arguments

var vp *viper.Viper

// Arguments arguments struct type
type Arguments struct {
	Logging struct {
		LogLevel    string `mapstructure:"log_level"`
		LogFilePath string `mapstructure:"log_file_path"`
	}

	Output struct {
		DefaultFile string `mapstructure:"default_file"`
		MaxRetry    int    `mapstructure:"max_retry"`
	}

	Generator struct {
		// Seed makes generation reproducible when non-zero.
		Seed uint64 `mapstructure:"seed"`
	}
}

func init() {
	vp = newViper(configPaths()...)
	var err error
	if Args, err = load(vp); err != nil {
		log.Panicf("config file error: %+v", err)
	}
}

// configPaths lists where uagen.toml is searched, in order.
func configPaths() []string {
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}
	// optionally look for config in the working directory
	return []string{filepath.Join(gopath, "bin"), "."}
}

func newViper(paths ...string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("uagen") // name of config file (without extension)
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return v
}

// load reads the config file v points at, if any, and decodes it on top of
// the defaults. A missing config file is not an error.
func load(v *viper.Viper) (args Arguments, e error) {
	if e = v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(e, &notFound) {
			return args, errors.Wrapf(e, "failed to read config file %s", v.ConfigFileUsed())
		}
	}
	if e = v.Unmarshal(&args); e != nil {
		return args, errors.Wrapf(e, "failed to decode config file %s", v.ConfigFileUsed())
	}
	checkConfig(&args)
	return args, nil
}

func checkConfig(args *Arguments) {
	if args.Output.DefaultFile == "" {
		args.Output.DefaultFile = DefaultOutputFile
	}
	if args.Output.MaxRetry < 1 {
		args.Output.MaxRetry = 1
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.log_level", "warning")
	v.SetDefault("logging.log_file_path", "")
	v.SetDefault("output.default_file", DefaultOutputFile)
	v.SetDefault("output.max_retry", 3)
	v.SetDefault("generator.seed", 0)
}

// ConfigFileUsed returns the file used to populate the config registry.
func ConfigFileUsed() string {
	return vp.ConfigFileUsed()
}
