package main

import (
	"fmt"
	"log"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version VersionFlag `short:"V" help:"Print version number and exit"`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error {
	return nil
}

func (v VersionFlag) IsBool() bool {
	return true
}

func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version)
	app.Exit(0)

	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func main() {
	log.SetFlags(0)

	cli := CLI{}
	kong.Parse(&cli,
		kong.Name("setup-audio-dirs"),
		kong.Description("Create the audio_native and audio_user directories next to this program."),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Exit(func(code int) {
			if code == 1 {
				code = 2
			}

			os.Exit(code)
		}),
	)

	root, err := findProjectRoot()
	if err != nil {
		log.Fatal(capitalizeFirst(err.Error()))
	}

	err = run(Config{ProjectRoot: root}, os.Stdout)
	if err != nil {
		log.Fatal(capitalizeFirst(err.Error()))
	}
}
