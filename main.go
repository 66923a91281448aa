package main

import (
	"fmt"
	"log"
	"os"

	"github.com/corewar/redcode/config"
	"github.com/corewar/redcode/languageServer"
	"github.com/corewar/redcode/parser"
	"github.com/corewar/redcode/playground"
	"github.com/corewar/redcode/report"
	"github.com/corewar/redcode/util"
	"github.com/tebeka/atexit"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "languageServer" {
		if len(os.Args) >= 3 && os.Args[2] == "debug" {
			util.LoggingEnabled = true
		}
		languageServer.ListenAndServe()
		return
	} else if len(os.Args) >= 3 && len(os.Args) <= 4 && os.Args[1] == "compile" {
		standard := ""
		if len(os.Args) == 4 {
			standard = os.Args[3]
		}
		atexit.Exit(compileFile(os.Args[2], standard))
	} else if len(os.Args) == 2 && os.Args[1] == "playground" {
		if err := playground.ListenAndServe(config.GetConfig()); err != nil {
			log.Fatalf("Playground stopped: %v", err)
		}
	} else if len(os.Args) == 1 {
		// run as language server but in tcp mode so it can be remotely debugged
		languageServer.ListenAndServeTCP()
	} else {
		log.Fatalln("Invalid arguments:", os.Args)
	}
}

// compileFile prints the load file of a warrior and returns the exit code.
func compileFile(filePath string, standard string) int {
	b, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("Could not read file %s: %v", filePath, err)
	}

	conf := config.GetConfig()
	options := conf.Options()
	if standard != "" {
		options.Standard, err = parser.ParseStandard(standard)
		if err != nil {
			log.Fatalf("Invalid standard: %v", err)
		}
	}

	result := parser.NewParser().Parse(string(b), options)
	fmt.Print(parser.LoadFileSerialiser{}.SerialiseLoadFile(result.LoadFile()))

	if err := report.Write(os.Stderr, filePath, result); err != nil {
		log.Printf("Could not write diagnostics: %v", err)
	}
	if result.Failed(conf.Strict) {
		return 1
	}
	return 0
}
