package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/airbusgeo/godal"
	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tanishpoddar/GreenVision/internal/notification"
	"github.com/tanishpoddar/GreenVision/internal/properties"
	"github.com/tanishpoddar/GreenVision/internal/ui"
)

func printBanner() {
	// Print the banner with go-figure
	figure1 := figure.NewFigure("Green", "isometric1", true)
	figure2 := figure.NewFigure("Vision", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func setupLogger(cfg properties.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func initCLI() {
	defer func() {
		if r := recover(); r != nil {
			// Get the function, file, and line where panic occurred
			pc, file, line, ok := runtime.Caller(3) // 3 levels up is often the panic source
			var location string
			if ok {
				fn := runtime.FuncForPC(pc)
				location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
			} else {
				location = "Unknown location"
			}

			// Print structured error
			fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
			fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
			fmt.Printf("\033[31mPlease check the input and try again.\033[0m\n")
			fmt.Printf("\033[31mExiting...\033[0m\n")

			// Prepare full error message
			stack := debug.Stack()
			errMessage := fmt.Sprintf("GreenVision panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
			err := notification.SendDiscordErrorNotification(errMessage)
			if err != nil {
				fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
			}
		}
	}()

	printBanner()
	ui.ShowMenu()
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			fmt.Println("\033[33mNo .env file found. Using environment defaults.\033[0m")
		}
	}

	if err := properties.Load(); err != nil {
		fmt.Printf("\033[31mInvalid configuration: %s\033[0m\n", err.Error())
		os.Exit(1)
	}

	setupLogger(properties.Get().Logging)
	godal.RegisterAll()

	initCLI()
}
