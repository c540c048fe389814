package main

import (
	"github.com/Gio-ZA/task-manager-project/config"
	"github.com/Gio-ZA/task-manager-project/internal/app"
)

func main() {

	// create and initialize the app
	app, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err) // handle error appropriately in production code
	}

	// run the app
	// This drives one interactive session: login, then the role-gated
	// menu loop until the user exits.
	err = app.Run()
	if err != nil {
		panic(err) // handle error appropriately in production code
	}
}
