package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"golang.org/x/term"

	"github.com/qnkhuat/hotseat/pkg"
	"github.com/qnkhuat/hotseat/pkg/engine"
	"github.com/qnkhuat/hotseat/pkg/gui"
)

var (
	logPath    string
	startFEN   string
	themeName  string
	themesPath string
	whiteName  string
	blackName  string
	printOnly  bool
	animate    bool
)

func init() {
	flag.StringVar(&logPath, "log", "./log", "path to log file")
	flag.StringVar(&startFEN, "fen", "", "start from this FEN layout instead of the standard one")
	flag.StringVar(&themeName, "theme", gui.ThemeBasic.Name, "board theme")
	flag.StringVar(&themesPath, "themes", "", "path to a JSON file of extra themes")
	flag.StringVar(&whiteName, "white", "", "name of the white player")
	flag.StringVar(&blackName, "black", "", "name of the black player")
	flag.BoolVar(&printOnly, "print", false, "print the starting board and exit")
	flag.BoolVar(&animate, "animate", true, "animate moves")
}

func newGame() (*engine.Game, error) {
	if startFEN == "" {
		return engine.NewGame(), nil
	}
	b, turn, err := pkg.BoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	return engine.NewGameFrom(b, turn), nil
}

func loadTheme() (gui.Theme, error) {
	var themes []gui.ThemeHex
	if themesPath != "" {
		var err error
		if themes, err = gui.LoadThemes(themesPath); err != nil {
			return gui.Theme{}, err
		}
	}
	return gui.ImportThemes(themeName, themes)
}

func main() {
	flag.Parse()

	game, err := newGame()
	if err != nil {
		log.Fatalf("failed to start chessterm: %s", err)
	}

	if printOnly {
		pkg.Draw(os.Stdout, game.Board())
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start chessterm: non-interactive terminals are not supported")
	}

	theme, err := loadTheme()
	if err != nil {
		log.Fatalf("failed to start chessterm: %s", err)
	}

	pkg.InitLog(logPath, "CHESSTERM: ")
	game.SetLogger(log.New(log.Writer(), "ENGINE: ", log.LstdFlags))

	players := pkg.NewPlayers(whiteName, blackName)
	log.Printf("new session: %s (White) vs %s (Black)", players.White, players.Black)

	shell := gui.NewShell(gui.Config{
		Game:    game,
		Players: players,
		Theme:   theme,
		Animate: animate,
	})

	defer func() {
		if r := recover(); r != nil {
			shell.App.Stop()
			log.Printf("panic: %+v\n%s", r, debug.Stack())
			log.SetOutput(os.Stderr)
			log.Fatalf("panic: %+v", r)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		shell.App.Stop()
	}()

	if err := shell.Run(); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	log.Printf("session over after %d moves", len(game.History()))
	pkg.PrintResult(os.Stdout, game, players)
}
