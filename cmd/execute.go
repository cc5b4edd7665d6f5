package cmd

import (
	"os"
	"strings"

	"github.com/ComedicChimera/olive"

	"xamlx/build"
	"xamlx/common"
	"xamlx/config"
	"xamlx/report"
)

// Execute runs the main `xamlx` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("xamlx", "xamlx compiles xaml markup into object builders", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	compileCmd := cli.AddSubcommand("compile", "compile xaml documents", true)
	compileCmd.AddPrimaryArg("path", "the path to the document or directory of documents to compile", true)
	compileCmd.AddStringArg("config", "c", "the path to the configuration file", false)
	compileCmd.AddStringArg("metadata", "m", "comma separated paths to the type metadata files", false)
	compileCmd.AddSelectorArg("format", "f", "the output format", false, []string{config.FormatText, config.FormatLLVM})
	compileCmd.AddStringArg("output", "o", "the output path", false)
	compileCmd.AddFlag("lax", "l", "report semantic errors as warnings instead of stopping")

	typesCmd := cli.AddSubcommand("types", "list the types of a metadata file", true)
	typesCmd.AddPrimaryArg("metadata-path", "the path to the metadata file", true)
	typesCmd.AddStringArg("name", "n", "the full name of a single type to list", false)

	cli.AddSubcommand("version", "print the xamlx version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportStdError("CLI Usage Error", err)
		return
	}

	logLevel := result.Arguments["loglevel"].(string)
	report.InitReporter(report.LogLevelFromName(logLevel))

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "compile":
		if !execCompileCommand(subResult, logLevel) {
			os.Exit(1)
		}
	case "types":
		execTypesCommand(subResult)
	case "version":
		report.ReportInfo("xamlx Version", common.XamlxVersion)
	}
}

// execCompileCommand executes the compile subcommand and handles all errors.
// It returns whether compilation succeeded.  The log level of the
// configuration file applies unless one was given on the command line.
func execCompileCommand(result *olive.ArgParseResult, logLevel string) bool {
	path, _ := result.PrimaryArg()

	// the configuration file defaults to the one in the working directory
	file := config.Default()
	if configPath, ok := stringArg(result, "config"); ok {
		var err error
		if file, err = config.LoadFile(configPath); err != nil {
			report.ReportStdError("Config Error", err)
			return false
		}
	} else if _, err := os.Stat(common.ConfigFileName); err == nil {
		if file, err = config.LoadFile(common.ConfigFileName); err != nil {
			report.ReportStdError("Config Error", err)
			return false
		}
	}

	if logLevel == "verbose" && file.Compiler.LogLevel != logLevel {
		report.InitReporter(report.LogLevelFromName(file.Compiler.LogLevel))
	}

	var metadataPaths []string
	if metadata, ok := stringArg(result, "metadata"); ok {
		metadataPaths = strings.Split(metadata, ",")
	}

	c, err := build.NewCompiler(file, metadataPaths)
	if err != nil {
		report.ReportStdError("Type System Error", err)
		return false
	}

	if format, ok := stringArg(result, "format"); ok {
		c.SetOutputFormat(format)
	}

	if result.HasFlag("lax") {
		c.SetStrict(false)
	}

	outputPath, _ := stringArg(result, "output")
	return c.Compile(path, outputPath)
}

// stringArg returns the value of an optional string argument
func stringArg(result *olive.ArgParseResult, name string) (string, bool) {
	if value, ok := result.Arguments[name]; ok {
		s, ok := value.(string)
		return s, ok && s != ""
	}

	return "", false
}
