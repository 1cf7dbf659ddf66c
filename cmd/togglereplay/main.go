// SPDX-License-Identifier: Unlicense OR MIT

// Command togglereplay replays a script of pointer events against a
// toggle without a window and prints the values it reports.
//
// Usage:
//
//	togglereplay -script clicks.yaml
//
// The environment, or a .env file in the working directory, may set
// TOGGLE_THEME to a theme file and TOGGLE_LOG_LEVEL to a logrus level.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/flodiebold/conrod/theme"
)

var scriptFlag = flag.String("script", "", "path to the replay script")

func main() {
	flag.Parse()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := run(log); err != nil {
		log.WithError(err).Error("togglereplay failed")
		os.Exit(1)
	}
}

func run(log *logrus.Logger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	if lvl := os.Getenv("TOGGLE_LOG_LEVEL"); lvl != "" {
		l, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("TOGGLE_LOG_LEVEL: %w", err)
		}
		log.SetLevel(l)
	}
	if *scriptFlag == "" {
		flag.Usage()
		return errors.New("missing -script")
	}
	th := theme.Default()
	if path := os.Getenv("TOGGLE_THEME"); path != "" {
		var err error
		th, err = theme.Load(path)
		if err != nil {
			return err
		}
		log.WithField("theme", th.Name).Debug("loaded theme")
	}
	s, err := LoadScript(*scriptFlag)
	if err != nil {
		return err
	}
	fmt.Println(Run(s, th, log))
	return nil
}
