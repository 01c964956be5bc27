package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/console"
	"github.com/nealhardesty/controllerx/internal/controllerx"
	"github.com/nealhardesty/controllerx/internal/gamepad"
	"github.com/nealhardesty/controllerx/internal/inject"
	"github.com/nealhardesty/controllerx/internal/translate"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("controllerx: ")

	var rootCmd = &cobra.Command{
		Use:   "controllerx",
		Short: "Game controller to keyboard and mouse",
		Long: `Translates the state of an Xbox 360 controller into keyboard and mouse input.
Press F1 while running to enter command mode.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Printf("Error running controllerx: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "keymap",
		Short: "Print the controller to keyboard and mouse map",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			translate.PrintKeymap(cmd.OutOrStdout())
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "spec",
		Short: "Print the compiled-in sensitivity configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config.Default().Print(cmd.OutOrStdout())
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error on Execute(): %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	host, err := inject.NewHost()
	if err != nil {
		return err
	}

	term, err := console.OpenTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	// a missing controller is reported by the main loop like a lost one
	var poller gamepad.Poller
	hidPoller, err := gamepad.OpenHID()
	if err != nil {
		poller = gamepad.Unavailable(err)
	} else {
		defer hidPoller.Close()
		poller = hidPoller
	}

	emulator, err := controllerx.NewControllerX(config.Default(), poller, host, term, os.Stdout, term)
	if err != nil {
		return err
	}

	return emulator.Run()
}
