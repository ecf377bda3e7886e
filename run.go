package vpnmon_builder

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const logFilename = "builder.log"

var stageMessageKeys = map[State]string{
	StatePrep:      "stage_prepare",
	StateEnvReady:  "stage_env",
	StateIconReady: "stage_icon",
	StatePackaged:  "stage_package",
	StateInstalled: "stage_install",
}

// Run parses commandline options (if any) and runs the build pipeline once.
// It returns the process exit code: 0 on success, 1 on any pipeline failure.
//
// Commandline parameters are:
//   -base           // Base directory to build in
//   -home           // Home directory to install launcher entries into
//   -no-autostart   // Do not install an autostart entry
//   -lang           // Choose the message language
//
// A plain invocation without any parameters performs the standard build in
// the current directory.
func Run() int {
	openBox()
	config, err := NewConfig()
	if err != nil {
		fmt.Println(err)
		return 1
	}
	translator := NewTranslatorVar(MergeVariables(config.Variables, StringMap{
		"product": config.Product,
		"comment": config.Comment,
	}))

	base := flag.String("base", "", translator.Get("cli_help_base"))
	home := flag.String("home", "", translator.Get("cli_help_home"))
	noAutostart := flag.Bool("no-autostart", false, translator.Get("cli_help_noautostart"))
	lang := flag.String("lang", "", translator.Get("cli_help_lang")+" "+strings.Join(translator.GetLanguages(), ", "))
	flag.Parse()

	if len(*lang) > 0 {
		err := translator.SetLanguage(*lang)
		if err != nil {
			fmt.Printf("Language '%s' not available\n", *lang)
		}
	}
	if err := config.ResolveDirs(*base, *home); err != nil {
		fmt.Println(err)
		return 1
	}
	if *noAutostart {
		config.Autostart = false
	}

	logfile := startLogging(filepath.Join(config.BaseDir, logFilename))
	defer logfile.Close()

	pipeline := NewPipeline(config, NewRunner())
	pipeline.SetProgressFunction(func(state State) {
		if key, ok := stageMessageKeys[state]; ok {
			fmt.Println(translator.Get(key))
		}
	})
	if err := pipeline.Run(context.Background()); err != nil {
		log.Println(err)
		fmt.Printf("%s: %s\n", translator.Get("build_failed"), err)
		return 1
	}

	report := pipeline.Report()
	fmt.Println(translator.Get("installed_binary"), report.Binary)
	fmt.Println(translator.Get("installed_icon"), config.IconPath())
	fmt.Println(translator.Get("installed_menu"), report.MenuEntry)
	if report.AutostartEntry != "" {
		fmt.Println(translator.Get("installed_autostart"), report.AutostartEntry)
	}
	fmt.Println(translator.Get("build_done"))
	return 0
}

// startLogging sets up the logging
func startLogging(logFilename string) *os.File {
	logfile, err := os.OpenFile(logFilename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(logfile)
	return logfile
}
